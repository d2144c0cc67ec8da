package explorers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tranvictor/decipher/util/explorers"
)

func TestEtherscanGetABIString(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"chainid": r.URL.Query().Get("chainid"),
			"module":  r.URL.Query().Get("module"),
			"action":  r.URL.Query().Get("action"),
			"address": r.URL.Query().Get("address"),
			"apikey":  r.URL.Query().Get("apikey"),
		}
		w.Write([]byte(`{"status":"1","message":"OK","result":"[{\"type\":\"function\",\"name\":\"transfer\"}]"}`))
	}))
	defer server.Close()

	ee := explorers.NewEtherscanLikeExplorer(server.URL, "test-key")
	ee.ChainID = 56

	abiStr, err := ee.GetABIString(context.Background(), "0x1234")
	if err != nil {
		t.Fatalf("GetABIString: %s", err)
	}
	if abiStr != `[{"type":"function","name":"transfer"}]` {
		t.Errorf("unexpected abi string: %s", abiStr)
	}

	want := map[string]string{
		"chainid": "56",
		"module":  "contract",
		"action":  "getabi",
		"address": "0x1234",
		"apikey":  "test-key",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query param %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestEtherscanGetABIStringRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Contract source code not verified"}`))
	}))
	defer server.Close()

	ee := explorers.NewEtherscanLikeExplorer(server.URL, "test-key")
	_, err := ee.GetABIString(context.Background(), "0x1234")
	if !errors.Is(err, explorers.ErrRejected) {
		t.Errorf("expected ErrRejected, got %v", err)
	}
}

func TestEtherscanGetABIStringGarbageBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>504 gateway timeout</html>`))
	}))
	defer server.Close()

	ee := explorers.NewEtherscanLikeExplorer(server.URL, "test-key")
	_, err := ee.GetABIString(context.Background(), "0x1234")
	if err == nil {
		t.Fatalf("expected error on garbage body")
	}
	if errors.Is(err, explorers.ErrRejected) {
		t.Errorf("garbage body should not map to ErrRejected: %v", err)
	}
}

func TestEtherscanGetABIStringHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ee := explorers.NewEtherscanLikeExplorer(server.URL, "test-key")
	_, err := ee.GetABIString(ctx, "0x1234")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestBlockscoutGetABIString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/smart-contracts/0xabcd" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"name":"Token","is_verified":true,"abi":[{"type":"function","name":"transfer"}]}`))
	}))
	defer server.Close()

	be := explorers.NewBlockscoutExplorer(server.URL, "")
	abiStr, err := be.GetABIString(context.Background(), "0xabcd")
	if err != nil {
		t.Fatalf("GetABIString: %s", err)
	}
	if abiStr != `[{"type":"function","name":"transfer"}]` {
		t.Errorf("unexpected abi string: %s", abiStr)
	}
}

func TestBlockscoutGetABIStringUnverified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"","is_verified":false}`))
	}))
	defer server.Close()

	be := explorers.NewBlockscoutExplorer(server.URL, "")
	_, err := be.GetABIString(context.Background(), "0xabcd")
	if !errors.Is(err, explorers.ErrRejected) {
		t.Errorf("expected ErrRejected, got %v", err)
	}
}
