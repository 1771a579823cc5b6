package browser

import "testing"

func TestOpenRejectsBadSchemes(t *testing.T) {
	tests := []string{
		"file:///etc/passwd",
		"javascript:alert(1)",
		"ftp://example.com",
		"://broken",
	}
	for _, u := range tests {
		if err := Open(u); err == nil {
			t.Errorf("Open(%q): expected error", u)
		}
	}
}
