package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const definitionPrefix = "/restconf/data/Cisco-IOS-XE-native:native/vrf/definition="

// fakeDevice is a minimal RESTCONF server holding VRF payloads keyed by name.
type fakeDevice struct {
	mu     sync.Mutex
	vrfs   map[string]string
	status map[string]int
	bodies map[string]string
	puts   []string
	srv    *httptest.Server
}

func newFakeDevice(t *testing.T) *fakeDevice {
	t.Helper()

	d := &fakeDevice{vrfs: map[string]string{}, status: map[string]int{}, bodies: map[string]string{}}
	d.srv = httptest.NewTLSServer(http.HandlerFunc(d.serve))
	t.Cleanup(d.srv.Close)
	return d
}

func (d *fakeDevice) host() string {
	return d.srv.Listener.Addr().String()
}

func (d *fakeDevice) serve(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if user, pass, ok := r.BasicAuth(); !ok || user != "admin" || pass != "s3cret-pw" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	path := r.URL.EscapedPath()
	if !strings.HasPrefix(path, definitionPrefix) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	name := strings.TrimPrefix(path, definitionPrefix)

	if code := d.status[r.Method+" "+name]; code != 0 {
		body, ok := d.bodies[r.Method+" "+name]
		if !ok {
			body = `{"ietf-restconf:errors":{"error":[{"error-type":"application","error-tag":"operation-failed","error-message":"injected"}]}}`
		}
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
		return
	}

	switch r.Method {
	case http.MethodGet:
		body, ok := d.vrfs[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/yang-data+json")
		_, _ = io.WriteString(w, body)
	case http.MethodPut:
		data, _ := io.ReadAll(r.Body)
		d.vrfs[name] = string(data)
		d.puts = append(d.puts, name)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (d *fakeDevice) put(name, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.vrfs[name] = body
}

func (d *fakeDevice) fail(method, name string, code int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status[method+" "+name] = code
}

func (d *fakeDevice) respond(method, name string, code int, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status[method+" "+name] = code
	d.bodies[method+" "+name] = body
}

func (d *fakeDevice) writes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.puts...)
}

func (d *fakeDevice) stored(name string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.vrfs[name]
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vrfs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
