package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"example.com", "example.com"},
		{"www.example.com", "example.com"},
		{"blog.example.com", "example.com"},
		{"a.b.example.com", "example.com"},
		{"example.co.uk", "example.co.uk"},
		{"www.example.co.uk", "example.co.uk"},
		{"blog.example.co.uk", "example.co.uk"},
		{"localhost", "localhost"},
		{"[::1]", ""},
		{"[2001:db8::1]", ""},
		{"192.168.1.1", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Extract(tt.host), "host=%q", tt.host)
	}
}

func TestSubdomain(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"example.com", ""},
		{"www.example.com", "www"},
		{"blog.example.com", "blog"},
		{"blog.dev.example.com", "blog.dev"},
		{"example.co.uk", ""},
		{"www.example.co.uk", "www"},
		{"blog.example.co.uk", "blog"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Subdomain(tt.host), "host=%q", tt.host)
	}
}

func TestRegisterTLDs(t *testing.T) {
	assert.Equal(t, "co.example", Extract("www.co.example"))

	RegisterTLDs([]string{"co.example", " .co.test "})
	assert.Equal(t, "www.co.example", Extract("blog.www.co.example"))
	assert.Equal(t, "www", Subdomain("www.site.co.test"))
}
