package flake //nolint:testpackage // Allow testing internals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNixAttr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "numpy", want: "numpy"},
		{in: "scikit-learn", want: "scikit-learn"},
		{in: "_private'", want: "_private'"},
		{in: "ruamel.yaml", want: `"ruamel.yaml"`},
		{in: "1password", want: `"1password"`},
		{in: "", want: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, nixAttr(tt.in))
		})
	}
}

func TestNixString(t *testing.T) {
	assert.Equal(t, `"a\\b"`, nixString(`a\b`))
	assert.Equal(t, `"\${x} $y"`, nixString("${x} $y"))
	assert.Equal(t, `"line\nnext"`, nixString("line\nnext"))
}

func TestTomlString(t *testing.T) {
	assert.Equal(t, `"plain"`, tomlString("plain"))
	assert.Equal(t, `"q\"b\\"`, tomlString(`q"b\`))
	assert.Equal(t, `"tab\there"`, tomlString("tab\there"))
	assert.Equal(t, `"bell\u0007"`, tomlString("bell\a"))
	assert.Equal(t, `"ünï"`, tomlString("ünï"))
}

func TestTomlKey(t *testing.T) {
	assert.Equal(t, "numpy", tomlKey("numpy"))
	assert.Equal(t, "1password", tomlKey("1password"))
	assert.Equal(t, `"a b"`, tomlKey("a b"))
}

func TestNixComment(t *testing.T) {
	assert.Equal(t, "plain", nixComment("plain"))
	assert.Equal(t, "a\n# b\n# c\n# d", nixComment("a\nb\r\nc\rd"))
}
