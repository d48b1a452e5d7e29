package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/mhartwig/fabricprov/pkg/utils"
)

// fakeFabric is an in-memory stand-in for the management endpoint. It
// speaks the same surface the client does: token login, filtered list,
// create, patch.
type fakeFabric struct {
	mu      sync.Mutex
	nextID  int
	objects map[string][]map[string]interface{}
	creates int
	patches int
}

func newFakeFabric() *fakeFabric {
	return &fakeFabric{
		nextID:  1,
		objects: make(map[string][]map[string]interface{}),
	}
}

func (f *fakeFabric) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/login/", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] == "wrong" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"detail": "invalid credentials"}`)
			return
		}
		fmt.Fprint(w, `{"token": "test-session-token"}`)
	})

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token test-session-token" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		endpoint := parts[1]

		f.mu.Lock()
		defer f.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			matches := []map[string]interface{}{}
			for _, obj := range f.objects[endpoint] {
				if matchesQuery(obj, r.URL.Query()) {
					matches = append(matches, obj)
				}
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"results": matches})

		case http.MethodPost:
			var obj map[string]interface{}
			json.NewDecoder(r.Body).Decode(&obj)
			obj["id"] = f.nextID
			f.nextID++
			f.creates++
			f.objects[endpoint] = append(f.objects[endpoint], obj)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(obj)

		case http.MethodPatch:
			id, _ := strconv.Atoi(parts[2])
			var changes map[string]interface{}
			json.NewDecoder(r.Body).Decode(&changes)
			for _, obj := range f.objects[endpoint] {
				if objID, ok := obj["id"].(int); ok && objID == id {
					for k, v := range changes {
						obj[k] = v
					}
					f.patches++
					json.NewEncoder(w).Encode(obj)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		}
	})

	return mux
}

func matchesQuery(obj map[string]interface{}, query map[string][]string) bool {
	for key, values := range query {
		if fmt.Sprintf("%v", obj[key]) != values[0] {
			return false
		}
	}
	return true
}

func (f *fakeFabric) count(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects[endpoint])
}

func testClient(t *testing.T, f *fakeFabric) (*FabricClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	logger := utils.NewFileLogger(io.Discard, false)
	c, err := NewClient(srv.URL, "admin", "secret", false, logger)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c, srv
}

func TestLoginFailure(t *testing.T) {
	f := newFakeFabric()
	srv := httptest.NewServer(f.handler())
	defer srv.Close()

	logger := utils.NewFileLogger(io.Discard, false)
	if _, err := NewClient(srv.URL, "admin", "wrong", false, logger); err == nil {
		t.Error("expected error for rejected credentials")
	}
}

func TestApplyCreatesThenLeavesAlone(t *testing.T) {
	f := newFakeFabric()
	c, _ := testClient(t, f)

	lookup := map[string]interface{}{"dn": "org-root/mac-pool-a"}
	payload := map[string]interface{}{
		"dn":   "org-root/mac-pool-a",
		"name": "a",
		"from": "00:25:B5:00:00:00",
		"to":   "00:25:B5:00:00:FF",
	}

	if _, err := c.Apply("mac-pools", lookup, payload); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	if f.count("mac-pools") != 1 {
		t.Fatalf("expected 1 object after first apply, got %d", f.count("mac-pools"))
	}

	// Re-issuing the identical call must neither create nor patch
	if _, err := c.Apply("mac-pools", lookup, payload); err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if f.count("mac-pools") != 1 {
		t.Errorf("expected 1 object after second apply, got %d", f.count("mac-pools"))
	}
	if f.patches != 0 {
		t.Errorf("expected no patches for unchanged payload, got %d", f.patches)
	}
}

func TestApplyPatchesChangedField(t *testing.T) {
	f := newFakeFabric()
	c, _ := testClient(t, f)

	lookup := map[string]interface{}{"dn": "fabric/lan/net-prod"}
	payload := map[string]interface{}{"dn": "fabric/lan/net-prod", "name": "prod", "tag": 10}

	if _, err := c.Apply("vlans", lookup, payload); err != nil {
		t.Fatal(err)
	}

	payload["tag"] = 20
	if _, err := c.Apply("vlans", lookup, payload); err != nil {
		t.Fatal(err)
	}

	if f.creates != 1 {
		t.Errorf("expected 1 create, got %d", f.creates)
	}
	if f.patches != 1 {
		t.Errorf("expected 1 patch for changed tag, got %d", f.patches)
	}

	objs, err := c.Filter("vlans", lookup)
	if err != nil {
		t.Fatal(err)
	}
	if len(objs) != 1 {
		t.Fatalf("expected 1 vlan, got %d", len(objs))
	}
	if tag, _ := objs[0]["tag"].(float64); tag != 20 {
		t.Errorf("tag = %v, expected 20 after patch", objs[0]["tag"])
	}
}

func TestDryRunSkipsWrites(t *testing.T) {
	f := newFakeFabric()
	srv := httptest.NewServer(f.handler())
	defer srv.Close()

	logger := utils.NewFileLogger(io.Discard, true)
	c, err := NewClient(srv.URL, "admin", "secret", true, logger)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	lookup := map[string]interface{}{"dn": "org-root/boot-policy-x"}
	if _, err := c.Apply("boot-policies", lookup, map[string]interface{}{"dn": "org-root/boot-policy-x"}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if f.count("boot-policies") != 0 {
		t.Errorf("dry run must not create objects, found %d", f.count("boot-policies"))
	}
}

func TestOrgResolve(t *testing.T) {
	f := newFakeFabric()
	c, _ := testClient(t, f)

	dn, err := c.Orgs().Resolve("finance")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if dn != "org-root/org-finance" {
		t.Errorf("dn = %q, expected org-root/org-finance", dn)
	}
	if f.count("orgs") != 1 {
		t.Errorf("expected sub-org to be created, got %d objects", f.count("orgs"))
	}

	// Second resolve is served from the cache
	if _, err := c.Orgs().Resolve("finance"); err != nil {
		t.Fatal(err)
	}
	if f.creates != 1 {
		t.Errorf("cached resolve must not re-create, got %d creates", f.creates)
	}

	// The root org never hits the endpoint
	dn, err = c.Orgs().Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if dn != "org-root" {
		t.Errorf("root dn = %q", dn)
	}
}

func TestFormatLookup(t *testing.T) {
	c := &FabricClient{}

	tests := []struct {
		name   string
		lookup map[string]interface{}
		want   string
	}{
		{"name wins", map[string]interface{}{"name": "a", "slot": 1}, "name=a"},
		{"dn next", map[string]interface{}{"dn": "org-root/ls-x"}, "dn=org-root/ls-x"},
		{"fallback pair", map[string]interface{}{"slot": 2}, "slot=2"},
		{"empty", map[string]interface{}{}, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.formatLookup(tt.lookup); got != tt.want {
				t.Errorf("formatLookup() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestCalculateDiff(t *testing.T) {
	c := &FabricClient{}

	existing := Object{"id": 1, "name": "x", "tag": float64(10), "mode": "trunk"}
	desired := map[string]interface{}{"name": "x", "tag": 10, "mode": "access", "extra": "new"}

	changes := c.calculateDiff(existing, desired)

	if _, ok := changes["name"]; ok {
		t.Error("unchanged name must not appear in diff")
	}
	if _, ok := changes["tag"]; ok {
		t.Error("equal numbers must not diff across the int/float64 boundary")
	}
	if changes["mode"] != "access" {
		t.Errorf("mode change missing from diff: %v", changes)
	}
	if changes["extra"] != "new" {
		t.Errorf("new field missing from diff: %v", changes)
	}
}
