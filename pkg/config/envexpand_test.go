package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("RK_TEST_VALUE", "hello")

	out := ExpandEnv([]byte("key: {{.RK_TEST_VALUE}}"))
	assert.Equal(t, "key: hello", string(out))
}

func TestExpandEnvMissingVariable(t *testing.T) {
	out := ExpandEnv([]byte("key: {{.RK_DOES_NOT_EXIST_EVER}}"))
	assert.Equal(t, "key: ", string(out))
}

func TestExpandEnvPreservesLiteralDollar(t *testing.T) {
	in := []byte(`pattern: "^secret.*$"` + "\n" + `password: "p@ss$word"`)
	assert.Equal(t, in, ExpandEnv(in))
}

func TestExpandEnvMalformedTemplatePassesThrough(t *testing.T) {
	in := []byte("key: {{.unterminated")
	assert.Equal(t, in, ExpandEnv(in))
}
