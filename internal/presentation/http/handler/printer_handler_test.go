package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salespoint-api/internal/application/service"
	"github.com/sangkips/salespoint-api/pkg/printer"
)

func newPrinterRouter(t *testing.T) (*gin.Engine, *printer.Loopback) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	lb := printer.NewLoopback()
	h := NewPrinterHandler(service.NewPrinterService(printer.NewChannel(lb)))

	router := gin.New()
	router.GET("/printer/status", h.GetStatus)
	router.POST("/printer/connect", h.Connect)
	router.POST("/printer/disconnect", h.Disconnect)
	router.POST("/printer/test", h.TestPrint)
	return router, lb
}

type printerStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		State     string `json:"state"`
		LastError string `json:"last_error"`
	} `json:"data"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) (*httptest.ResponseRecorder, printerStatusResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)

	var body printerStatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal %s %s response: %v (body %q)", method, path, err, w.Body.String())
	}
	return w, body
}

func TestPrinterStatusStartsDisconnected(t *testing.T) {
	router, _ := newPrinterRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/printer/status")
	if w.Code != http.StatusOK {
		t.Fatalf("status code = %d, want 200", w.Code)
	}
	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.Data.State != "disconnected" {
		t.Errorf("state = %q, want disconnected", body.Data.State)
	}
}

func TestPrinterConnectDisconnectFlow(t *testing.T) {
	router, _ := newPrinterRouter(t)

	w, body := doRequest(t, router, http.MethodPost, "/printer/connect")
	if w.Code != http.StatusOK {
		t.Fatalf("connect code = %d, want 200", w.Code)
	}
	if body.Data.State != "connected" {
		t.Errorf("state after connect = %q, want connected", body.Data.State)
	}

	w, body = doRequest(t, router, http.MethodPost, "/printer/disconnect")
	if w.Code != http.StatusOK {
		t.Fatalf("disconnect code = %d, want 200", w.Code)
	}
	if body.Data.State != "disconnected" {
		t.Errorf("state after disconnect = %q, want disconnected", body.Data.State)
	}
}

func TestPrinterTestPageRequiresConnection(t *testing.T) {
	router, lb := newPrinterRouter(t)

	w, body := doRequest(t, router, http.MethodPost, "/printer/test")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("test print while disconnected code = %d, want 502", w.Code)
	}
	if body.Success {
		t.Error("success = true for failed test print, want false")
	}
	if len(lb.Sent()) != 0 {
		t.Errorf("payload count = %d, want 0", len(lb.Sent()))
	}

	doRequest(t, router, http.MethodPost, "/printer/connect")
	w, _ = doRequest(t, router, http.MethodPost, "/printer/test")
	if w.Code != http.StatusOK {
		t.Fatalf("test print while connected code = %d, want 200", w.Code)
	}
	if len(lb.Sent()) != 1 {
		t.Errorf("payload count = %d, want 1", len(lb.Sent()))
	}
}

func TestPrinterConnectFailureReportsError(t *testing.T) {
	router, lb := newPrinterRouter(t)
	lb.ConnectErr = errors.New("pairing rejected")

	w, body := doRequest(t, router, http.MethodPost, "/printer/connect")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("failed connect code = %d, want 502", w.Code)
	}
	if body.Success {
		t.Error("success = true for failed connect, want false")
	}

	// The channel stays down and the failure is visible on status
	_, body = doRequest(t, router, http.MethodGet, "/printer/status")
	if body.Data.State != "disconnected" {
		t.Errorf("state after failed connect = %q, want disconnected", body.Data.State)
	}
	if body.Data.LastError == "" {
		t.Error("last_error is empty after failed connect")
	}
}
