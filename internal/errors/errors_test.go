package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "config error",
			code:    "E001",
			wantMsg: "Config file not found",
			wantCat: CategoryConfig,
		},
		{
			name:    "publish error",
			code:    "E104",
			wantMsg: "Duplicate page path",
			wantCat: CategoryPublish,
		},
		{
			name:    "deploy error",
			code:    "E202",
			wantMsg: "Upload failed",
			wantCat: CategoryDeploy,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryPublish, "page %q not rendered", "about")
	if err.Message != `page "about" not rendered` {
		t.Errorf("Message = %q, want %q", err.Message, `page "about" not rendered`)
	}
	if err.Category != CategoryPublish {
		t.Errorf("Category = %q, want %q", err.Category, CategoryPublish)
	}
}

func TestVeneerError_Error(t *testing.T) {
	err := New("E001")
	got := err.Error()
	want := "E001: Config file not found"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &VeneerError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestVeneerError_WithLocation(t *testing.T) {
	err := New("E002").WithLocation("veneer.json", 7)

	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.File != "veneer.json" {
		t.Errorf("Location.File = %q, want %q", err.Location.File, "veneer.json")
	}
	if err.Location.Line != 7 {
		t.Errorf("Location.Line = %d, want %d", err.Location.Line, 7)
	}
}

func TestVeneerError_WithLocationFromError(t *testing.T) {
	decodeErr := &testError{msg: "invalid character '}' after line 12"}
	err := New("E002").WithLocationFromError("veneer.json", decodeErr)

	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.File != "veneer.json" {
		t.Errorf("Location.File = %q, want %q", err.Location.File, "veneer.json")
	}
	if err.Location.Line != 12 {
		t.Errorf("Location.Line = %d, want %d", err.Location.Line, 12)
	}

	// No line information at all still records the file.
	err2 := New("E002").WithLocationFromError("veneer.json", &testError{msg: "unexpected EOF"})
	if err2.Location == nil || err2.Location.File != "veneer.json" {
		t.Errorf("Location = %v, want file-only location", err2.Location)
	}
	if err2.Location.Line != 0 {
		t.Errorf("Location.Line = %d, want 0", err2.Location.Line)
	}
}

func TestVeneerError_WithSuggestion(t *testing.T) {
	err := New("E001").WithSuggestion("Run `veneer new mysite` first")
	if err.Suggestion != "Run `veneer new mysite` first" {
		t.Errorf("Suggestion = %q, want %q", err.Suggestion, "Run `veneer new mysite` first")
	}
}

func TestVeneerError_WithDetail(t *testing.T) {
	err := New("E001").WithDetail("Custom detail")
	if err.Detail != "Custom detail" {
		t.Errorf("Detail = %q, want %q", err.Detail, "Custom detail")
	}
}

func TestVeneerError_Wrap(t *testing.T) {
	inner := New("E002")
	outer := New("E001").Wrap(inner)

	if outer.Wrapped != inner {
		t.Error("Wrapped error mismatch")
	}
	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
}

func TestFromError(t *testing.T) {
	// nil error
	if FromError(nil, "E001") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	// Already VeneerError
	ve := New("E001")
	if FromError(ve, "E002") != ve {
		t.Error("FromError should return VeneerError as-is")
	}

	// Standard error
	stdErr := &testError{msg: "test error"}
	result := FromError(stdErr, "E001")
	if result.Wrapped != stdErr {
		t.Error("Standard error should be wrapped")
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{
			name: "nil location",
			loc:  nil,
			want: "",
		},
		{
			name: "with line",
			loc:  &Location{File: "veneer.json", Line: 10},
			want: "veneer.json:10",
		},
		{
			name: "file only",
			loc:  &Location{File: "veneer.json"},
			want: "veneer.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.loc.String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	err := New("E002").
		WithLocation("veneer.json", 7).
		WithSuggestion("Remove the trailing comma").
		Wrap(&testError{msg: "invalid character '}'"})

	formatted := err.Format()

	if !strings.Contains(formatted, "E002") {
		t.Error("Format should contain error code")
	}
	if !strings.Contains(formatted, "Config file is not valid JSON") {
		t.Error("Format should contain error message")
	}
	if !strings.Contains(formatted, "veneer.json:7") {
		t.Error("Format should contain file position")
	}
	if !strings.Contains(formatted, "Hint:") {
		t.Error("Format should contain hint")
	}
	if !strings.Contains(formatted, "Caused by:") {
		t.Error("Format should contain the underlying cause")
	}
	if !strings.Contains(formatted, "Learn more:") {
		t.Error("Format should contain doc URL")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E002").WithLocation("veneer.json", 10)
	compact := err.FormatCompact()

	want := "veneer.json:10: E002: Config file is not valid JSON"
	if compact != want {
		t.Errorf("FormatCompact() = %q, want %q", compact, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E303").WithLocation("pages/home.go", 10)
	json := err.FormatJSON()

	if !strings.Contains(json, `"code":"E303"`) {
		t.Error("JSON should contain code")
	}
	if !strings.Contains(json, `"category":"dev"`) {
		t.Error("JSON should contain category")
	}
	if !strings.Contains(json, `"message":"Rebuild failed"`) {
		t.Error("JSON should contain message")
	}
	if !strings.Contains(json, `"location":`) {
		t.Error("JSON should contain location")
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Error("GetAllCodes() should return codes")
	}

	found := false
	for _, code := range codes {
		if code == "E001" {
			found = true
			break
		}
	}
	if !found {
		t.Error("E001 should be in the codes list")
	}
}

func TestGetTemplate(t *testing.T) {
	template, ok := GetTemplate("E001")
	if !ok {
		t.Error("E001 should exist")
	}
	if template.Message != "Config file not found" {
		t.Error("Template message mismatch")
	}

	_, ok = GetTemplate("E999")
	if ok {
		t.Error("E999 should not exist")
	}
}

func TestRegister(t *testing.T) {
	Register("E999", ErrorTemplate{
		Category: CategoryCLI,
		Message:  "Custom test error",
		Detail:   "This is a test error",
		DocURL:   "https://test.dev/E999",
	})

	err := New("E999")
	if err.Message != "Custom test error" {
		t.Errorf("Message = %q, want %q", err.Message, "Custom test error")
	}

	// Cleanup
	delete(registry, "E999")
}

func TestWrapText(t *testing.T) {
	got := wrapText("short text", 100)
	if len(got) != 1 || got[0] != "short text" {
		t.Errorf("wrapText short text: got %v", got)
	}

	got = wrapText("this is a longer text that should be wrapped", 20)
	if len(got) != 3 {
		t.Errorf("wrapText long text: expected 3 lines, got %d: %v", len(got), got)
	}

	got = wrapText("", 10)
	if len(got) != 0 {
		t.Errorf("wrapText empty: expected empty, got %v", got)
	}
}
