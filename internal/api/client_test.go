package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const categoriesBody = `{
	"status": true,
	"message": "successfully fetched categories",
	"data": [
		{"category_id": "1000", "category": "All"},
		{"category_id": "1001", "category": "Music"},
		{"category_id": "1003", "category": "Comedy"}
	]
}`

const mediaBody = `{
	"status": true,
	"data": [
		{
			"title": "Shape of You",
			"thumbnail": "https://img.example/shape.jpg",
			"authors": [{"profile_name": "Olivia Mitchell", "profile_picture": "https://img.example/olivia.jpg"}],
			"others": {"views": "100K"}
		},
		{
			"title": "Laugh at My Pain",
			"thumbnail": "https://img.example/pain.jpg",
			"authors": [
				{"profile_name": "Kevin Hart", "profile_picture": "https://img.example/kevin.jpg"},
				{"profile_name": "Guest", "profile_picture": "https://img.example/guest.jpg"}
			],
			"others": {"views": 1100}
		}
	]
}`

func newTestClient(t *testing.T, srv *httptest.Server, logger *zap.Logger) *Client {
	t.Helper()
	c, err := NewClient(Options{
		CategoriesURL: srv.URL + "/categories",
		MediaURL:      srv.URL + "/category/",
		HTTPClient:    srv.Client(),
		Logger:        logger,
	})
	require.NoError(t, err)
	return c
}

func TestCategories_OK(t *testing.T) {
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(RequestIDHeader)
		assert.Equal(t, "/categories", r.URL.Path)
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(categoriesBody))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, nil)
	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "1000", cats[0].ID)
	assert.Equal(t, "All", cats[0].Name)
	assert.Equal(t, "Comedy", cats[2].Name)
	assert.Len(t, gotRequestID, 36, "request id should be a uuid")
}

func TestMedia_OK(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(mediaBody))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, nil)
	items, err := c.Media(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, "/category/1001", gotPath)
	require.Len(t, items, 2)
	assert.Equal(t, int64(100000), items[0].Views())
	assert.Equal(t, int64(1100), items[1].Views())
	assert.True(t, items[1].Others.Views.Numeric)
	assert.Len(t, items[1].Authors, 2)
}

func TestMedia_EmptyListIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": false, "message": "no data found", "data": []}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, nil)
	items, err := c.Media(context.Background(), "1005")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMediaURL_EscapesCategory(t *testing.T) {
	c, err := NewClient(Options{MediaURL: "https://api.example/videos/category/"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example/videos/category/1000", c.MediaURL("1000"))
	assert.Equal(t, "https://api.example/videos/category/a%2Fb", c.MediaURL("a/b"))
}

func TestFetch_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			want: ErrStatus,
		},
		{
			name: "not found status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			want: ErrStatus,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data": [`))
			},
			want: ErrDecode,
		},
		{
			name:    "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			want:    ErrDecode,
		},
		{
			name: "missing data member",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status": true}`))
			},
			want: ErrDecode,
		},
		{
			name: "null data member",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data": null}`))
			},
			want: ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			core, logs := observer.New(zap.WarnLevel)
			c := newTestClient(t, srv, zap.New(core))

			cats, err := c.Categories(context.Background())
			require.Error(t, err)
			assert.Nil(t, cats)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, 1, logs.FilterMessage("fetch failed").Len(), "failure is logged at the boundary")
		})
	}
}

func TestFetch_StatusErrorCarriesCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, nil)
	_, err := c.Media(context.Background(), "2")

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	assert.Equal(t, "status", Class(err))
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newTestClient(t, srv, nil)
	srv.Close()

	_, err := c.Categories(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport), "got %v", err)
	assert.Equal(t, "transport", Class(err))
}

func TestFetch_CanceledContextIsNotWarned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(categoriesBody))
	}))
	defer srv.Close()

	core, logs := observer.New(zap.DebugLevel)
	c := newTestClient(t, srv, zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Categories(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, logs.FilterMessage("fetch failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("fetch abandoned").Len())
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": true, "message": "ok"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, nil)
	var out struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, c.FetchJSON(context.Background(), srv.URL, &out))
	assert.True(t, out.Status)
	assert.Equal(t, "ok", out.Message)
}

func TestImage(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, nil)

	data, err := c.Image(context.Background(), srv.URL+"/thumb.png")
	require.NoError(t, err)
	assert.Equal(t, png, data)

	_, err = c.Image(context.Background(), srv.URL+"/missing.png")
	assert.True(t, errors.Is(err, ErrStatus))

	_, err = c.Image(context.Background(), "thumb.png")
	assert.True(t, errors.Is(err, ErrTransport), "relative URLs are rejected before dialing")
}

func TestNewClient_ValidatesEndpoints(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "defaults", opts: Options{}},
		{name: "custom http", opts: Options{CategoriesURL: "http://localhost:8080/c", MediaURL: "http://localhost:8080/m"}},
		{name: "ftp scheme", opts: Options{CategoriesURL: "ftp://example.com/c"}, wantErr: true},
		{name: "no host", opts: Options{MediaURL: "https:///m"}, wantErr: true},
		{name: "relative", opts: Options{MediaURL: "/videos/category"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
