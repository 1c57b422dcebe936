package bounce

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-collision", "after-collision"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	var q screenshotQueue
	q.add("a")
	q.add("b")
	q.add("c")
	if len(q.labels) != 3 {
		t.Fatalf("queue len = %d, want 3", len(q.labels))
	}
	if q.labels[0] != "a" || q.labels[1] != "b" || q.labels[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", q.labels)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-alpha orange, premultiplied
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	if got := img.Pix[0:4]; got[0] != 255 || got[3] != 255 {
		t.Errorf("opaque pixel = %v", got)
	}
	if got := img.Pix[4:8]; got[0] != 127 || got[1] != 63 || got[3] != 128 {
		t.Errorf("half-alpha pixel = %v, want [127 63 0 128]", got)
	}
	if got := img.Pix[8:12]; got[3] != 0 {
		t.Errorf("transparent pixel = %v", got)
	}
}
