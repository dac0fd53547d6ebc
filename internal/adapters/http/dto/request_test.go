package dto_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-todos/internal/adapters/http/dto"
)

func formRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/lists", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestDecodeListForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"title kept as submitted", url.Values{dto.FieldListTitle: {"  Groceries "}}.Encode(), "  Groceries "},
		{"missing field", "", ""},
		{"unicode", url.Values{dto.FieldListTitle: {"Café ☕"}}.Encode(), "Café ☕"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := dto.DecodeListForm(httptest.NewRecorder(), formRequest(tt.body))
			if err != nil {
				t.Fatalf("DecodeListForm() error = %v", err)
			}
			if got.Title != tt.want {
				t.Errorf("DecodeListForm().Title = %q, want %q", got.Title, tt.want)
			}
		})
	}
}

func TestDecodeTodoForm(t *testing.T) {
	t.Parallel()

	body := url.Values{dto.FieldTodoTitle: {"Buy milk"}, dto.FieldListTitle: {"ignored"}}.Encode()
	got, err := dto.DecodeTodoForm(httptest.NewRecorder(), formRequest(body))
	if err != nil {
		t.Fatalf("DecodeTodoForm() error = %v", err)
	}
	if got.Title != "Buy milk" {
		t.Errorf("DecodeTodoForm().Title = %q, want %q", got.Title, "Buy milk")
	}
}

func TestDecodeForm_RejectsOversizedBody(t *testing.T) {
	t.Parallel()

	body := dto.FieldTodoTitle + "=" + strings.Repeat("a", dto.MaxFormBytes+1)
	_, err := dto.DecodeTodoForm(httptest.NewRecorder(), formRequest(body))
	if err == nil {
		t.Fatal("DecodeTodoForm() error = nil, want error for oversized body")
	}
}

func TestDecodeForm_RejectsMalformedBody(t *testing.T) {
	t.Parallel()

	_, err := dto.DecodeListForm(httptest.NewRecorder(), formRequest("%zz"))
	if err == nil {
		t.Fatal("DecodeListForm() error = nil, want error for malformed body")
	}
}
