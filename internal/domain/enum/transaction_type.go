package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// TransactionType represents the kind of a committed transaction
type TransactionType int

const (
	TransactionTypeSale   TransactionType = 0
	TransactionTypeRefund TransactionType = 1
)

func (t TransactionType) String() string {
	names := [...]string{"Sale", "Refund"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Sale"
	}
	return names[t]
}

// ParseTransactionType converts a case-insensitive name to a TransactionType
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(s) {
	case "sale":
		return TransactionTypeSale, nil
	case "refund":
		return TransactionTypeRefund, nil
	}
	return TransactionTypeSale, fmt.Errorf("unknown transaction type %q", s)
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TransactionType(i)
		return nil
	}
	switch str {
	case "Sale":
		*t = TransactionTypeSale
	case "Refund":
		*t = TransactionTypeRefund
	}
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TransactionType) Scan(value interface{}) error {
	if value == nil {
		*t = TransactionTypeSale
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TransactionType(v)
	case int:
		*t = TransactionType(v)
	}
	return nil
}
