package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnvExpr(t *testing.T) {
	testCases := []struct {
		description string
		env         map[string]string
		input       string
		expected    string
	}{
		{description: "no expressions", input: "just a plain string", expected: "just a plain string"},
		{description: "single expression", env: map[string]string{"FOO": "bar"}, input: "value is ${env.FOO}", expected: "value is bar"},
		{description: "multiple expressions", env: map[string]string{"A": "1", "B": "2"}, input: "${env.A}-${env.B}-${env.A}", expected: "1-2-1"},
		{description: "unset variable becomes empty", input: "unset=${env.PROCMAN_NOTSET}-end", expected: "unset=-end"},
		{description: "missing closing brace", env: map[string]string{"X": "x"}, input: "start ${env.X and ${env.Y} end", expected: "start ${env.X and  end"},
		{description: "prefix only no key", input: "oops ${env.} done", expected: "oops  done"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			t.Setenv("Y", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.expected, expandEnvExpr(tc.input))
		})
	}
}
