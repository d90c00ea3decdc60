package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/logitrack/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Утилита для создания *gin.Context с query-строкой
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?"+rawQuery, http.NoBody)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func ctxWithParam(name, value string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: name, Value: value}}
	return c
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
		{"equal_min", 1, 1, 10, 1},
		{"equal_max", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := httpx.ClampInt(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestParseLimitOffset_Defaults_NoQuery(t *testing.T) {
	t.Parallel()

	{
		c := ctxWithQuery("")
		limit, offset := httpx.ParseLimitOffset(c, 20, 100)
		if limit != 20 || offset != 0 {
			t.Fatalf("got limit=%d offset=%d, want 20/0", limit, offset)
		}
	}

	{
		c := ctxWithQuery("")
		limit, offset := httpx.ParseLimitOffset(c, 200, 100)
		if limit != 100 || offset != 0 {
			t.Fatalf("got limit=%d offset=%d, want 100/0", limit, offset)
		}
	}

	{
		c := ctxWithQuery("")
		limit, offset := httpx.ParseLimitOffset(c, 0, 100)
		if limit != 1 || offset != 0 {
			t.Fatalf("got limit=%d offset=%d, want 1/0", limit, offset)
		}
	}
}

func TestParseLimitOffset_QueryProvided(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rawQuery     string
		defaultLimit int
		maxLimit     int
		wantLimit    int
		wantOffset   int
	}{
		// корректные значения
		{"ok_both", "limit=25&offset=10", 20, 100, 25, 10},
		{"ok_only_limit", "limit=5", 20, 100, 5, 0},
		{"ok_only_offset", "offset=7", 20, 100, 20, 7},

		// клампинг limit
		{"limit_zero_clamped_to_min", "limit=0", 20, 100, 1, 0},
		{"limit_negative_clamped_to_min", "limit=-5", 20, 100, 1, 0},
		{"limit_above_max_clamped", "limit=999", 20, 100, 100, 0},

		// нечисловые значения
		{"limit_non_int_uses_default", "limit=foo", 20, 100, 20, 0},
		{"offset_non_int_ignored", "offset=bar", 20, 100, 20, 0},

		// отрицательный offset игнорируется
		{"offset_negative_ignored", "limit=10&offset=-3", 20, 100, 10, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := ctxWithQuery(tt.rawQuery)
			limit, offset := httpx.ParseLimitOffset(c, tt.defaultLimit, tt.maxLimit)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Fatalf("got limit=%d offset=%d, want %d/%d (query=%q)",
					limit, offset, tt.wantLimit, tt.wantOffset, tt.rawQuery)
			}
		})
	}
}

func TestParseIDParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  string
		wantID int64
		wantOK bool
	}{
		{"ok", "42", 42, true},
		{"zero_rejected", "0", 0, false},
		{"negative_rejected", "-1", 0, false},
		{"non_numeric", "abc", 0, false},
		{"empty", "", 0, false},
		{"float_rejected", "1.5", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := ctxWithParam("id", tt.value)
			id, ok := httpx.ParseIDParam(c, "id")
			if id != tt.wantID || ok != tt.wantOK {
				t.Fatalf("ParseIDParam(%q) = (%d, %v), want (%d, %v)", tt.value, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
