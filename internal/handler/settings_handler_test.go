package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestSettingsGetFlattens(t *testing.T) {
	r, _ := newTestAPI(t, respond(http.StatusOK,
		`[{"id":1,"key":"site_name","value":"StudyHive"},{"id":2,"key":"phone","value":"0700123456"}]`))

	w := doJSON(r, http.MethodGet, "/api/settings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var values map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &values); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if values["site_name"] != "StudyHive" || values["phone"] != "0700123456" {
		t.Errorf("values = %v", values)
	}
}

func TestSettingsGetFailsSoftToEmptyObject(t *testing.T) {
	r, _ := newTestAPI(t, respond(http.StatusInternalServerError, `down`))

	w := doJSON(r, http.MethodGet, "/api/settings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := w.Body.String(); body != "{}" {
		t.Errorf("body = %s, want {}", body)
	}
}

func TestSettingsSaveUpsertsEachKey(t *testing.T) {
	r, fake := newTestAPI(t, func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodPatch {
			w.Write([]byte(`[]`)) // key not present yet
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":1}]`))
	})

	w := doJSON(r, http.MethodPost, "/api/settings", `{"site_name":"StudyHive"}`)
	if w.Code != http.StatusOK || w.Body.String() != `{"success":true}` {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	calls := fake.Calls()
	if len(calls) != 2 || calls[0].Method != http.MethodPatch || calls[1].Method != http.MethodPost {
		t.Errorf("expected probe then insert, got %v", calls)
	}
}

func TestSettingsSaveExistingKeyUpdatesInPlace(t *testing.T) {
	r, fake := newTestAPI(t, respond(http.StatusOK, `[{"id":1,"key":"site_name","value":"StudyHive"}]`))

	w := doJSON(r, http.MethodPost, "/api/settings", `{"site_name":"StudyHive"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	calls := fake.Calls()
	if len(calls) != 1 || calls[0].Method != http.MethodPatch {
		t.Errorf("existing key should only PATCH, got %v", calls)
	}
}

func TestSettingsSaveRejectsMalformedBody(t *testing.T) {
	r, _ := newTestAPI(t, respond(http.StatusOK, `[]`))

	w := doJSON(r, http.MethodPost, "/api/settings", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
