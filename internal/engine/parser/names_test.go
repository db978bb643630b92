package parser

import "testing"

func TestComponentName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/app/src/Foo.tsx", want: "Foo"},
		{path: "src/components/Button.jsx", want: "Button"},
		{path: "Modal.test.tsx", want: "Modal.test"},
		{path: "/app/src/index.jsx", want: "index"},
	}
	for _, tt := range tests {
		if got := ComponentName(tt.path); got != tt.want {
			t.Errorf("ComponentName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNewComponentFile_SameBaseNameCollapses(t *testing.T) {
	a := NewComponentFile("/app/src/admin/Header.tsx")
	b := NewComponentFile("/app/src/shop/Header.tsx")
	if a.Name != b.Name {
		t.Fatalf("expected both files to map to one component, got %q and %q", a.Name, b.Name)
	}
}
