package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuncLogger(t *testing.T) {
	lines := []string{}
	logger := FuncLogger(func(s string) {
		lines = append(lines, s)
	})

	logger.Println("moves", 3)
	logger.Printf("%v:%v", "e2", "e4")
	logger.Print("done")

	assert.Equal(t, []string{"moves 3\n", "e2:e4", "done"}, lines)
}
