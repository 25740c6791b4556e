package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/delacli/dela/internal/types"
)

func TestParseCMake_EmitsCustomTargetsWithComment(t *testing.T) {
	data := []byte(`
add_custom_target(docs
    COMMAND doxygen Doxyfile
    COMMENT "Generate documentation"
)

add_custom_target(format
    COMMAND clang-format -i src/*.cpp
)
`)
	tasks, status, _ := ParseCMake(data, "CMakeLists.txt")
	assert.Equal(t, types.StatusParsed, status)
	byName := make(map[string]types.RawTask)
	for _, tk := range tasks {
		byName[tk.SourceName] = tk
	}
	assert.Equal(t, "Generate documentation", byName["docs"].Description)
	assert.Empty(t, byName["format"].Description)
}

func TestParseCMake_NoCustomTargetsIsParsedEmpty(t *testing.T) {
	tasks, status, _ := ParseCMake([]byte("project(foo)\n"), "CMakeLists.txt")
	assert.Equal(t, types.StatusParsed, status)
	assert.Empty(t, tasks)
}
