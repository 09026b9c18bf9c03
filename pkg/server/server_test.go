package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtolley1/go-tabview/pkg/api"
	"github.com/dtolley1/go-tabview/pkg/dataset"
	"github.com/dtolley1/go-tabview/pkg/domain"
)

func testConfig() Config {
	return Config{Port: "0", DefaultPageSize: 25, LogLevel: "info"}
}

func TestServer_Routes(t *testing.T) {
	s := NewServer(testConfig(), nil)

	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	s.Router().ServeHTTP(rr, httptest.NewRequest("GET", "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServer_FactoryAppliesConfiguredPageSize(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultPageSize = 2
	s := NewServer(cfg, nil)

	ds := domain.Dataset{
		Name:    "sizes",
		Columns: []domain.ColumnSpec{{Field: "n", DisplayNames: []string{"N"}}},
		Records: []domain.Record{{"n": 1.0}, {"n": 2.0}, {"n": 3.0}},
	}
	data, err := json.Marshal(ds)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, httptest.NewRequest("POST", "/views", bytes.NewReader(data)))
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp api.CreateViewResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.State.PageSize)
	assert.Equal(t, 2, resp.State.NumPages)
}

func TestServer_PreloadDataset(t *testing.T) {
	ds := &domain.Dataset{
		Name:    "preload",
		Columns: []domain.ColumnSpec{{Field: "name", DisplayNames: []string{"Name"}}},
		Records: []domain.Record{{"name": "x"}},
	}
	path := filepath.Join(t.TempDir(), "preload"+dataset.FileExtension)
	require.NoError(t, dataset.Save(path, ds))

	s := NewServer(testConfig(), nil)
	id, err := s.PreloadDataset(path)
	require.NoError(t, err)
	assert.Contains(t, s.Handler().ViewIDs(), id)
}

func TestServer_PreloadDataset_MissingFile(t *testing.T) {
	s := NewServer(testConfig(), nil)
	_, err := s.PreloadDataset(filepath.Join(t.TempDir(), "missing.gtvw"))
	assert.Error(t, err)
}

func TestServer_PreloadDataset_JSON(t *testing.T) {
	ds := domain.Dataset{
		Name:    "jsonload",
		Columns: []domain.ColumnSpec{{Field: "name", DisplayNames: []string{"Name"}}},
		Records: []domain.Record{{"name": "y"}, {"name": "z"}},
	}
	data, err := json.Marshal(ds)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "ds.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	s := NewServer(testConfig(), nil)
	id, err := s.PreloadDataset(path)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, httptest.NewRequest("GET", "/views/"+id+"/items?scope=all", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp api.ItemsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}
