package knowledge

// Builtin returns the static command table. Callers receive a fresh copy
// each time; the canonical table is never mutated at runtime.
func Builtin() Table {
	table := make(Table, len(builtinTable))
	for name, entry := range builtinTable {
		table[name] = entry.Clone()
	}
	return table
}

var builtinTable = Table{
	"sudo": {
		Description: "Executes a command with superuser (root) privileges.",
		Danger:      DangerHigh,
	},
	"rm": {
		Description: "Removes (deletes) files or directories.",
		Danger:      DangerMedium,
		Flags: map[string]string{
			"-r": "Removes directories and their contents recursively.",
			"-f": "Forces the removal of files without prompting for confirmation.",
			"-i": "Prompts for confirmation before every removal.",
			"-v": "Explains what is being done.",
		},
	},
	"ls": {
		Description: "Lists directory contents.",
		Danger:      DangerLow,
		Flags: map[string]string{
			"-l": "Uses a long listing format.",
			"-a": "Shows all files, including hidden files (starting with '.').",
			"-h": "With -l, prints sizes in human readable format (e.g., 1K 234M 2G).",
			"-t": "Sorts by modification time, newest first.",
			"-R": "Lists subdirectories recursively.",
		},
	},
	"chmod": {
		Description: "Changes the permissions of a file or directory.",
		Danger:      DangerLow,
		Flags: map[string]string{
			"-R": "Changes permissions recursively.",
			"-v": "Reports every file processed.",
		},
	},
	"chown": {
		Description: "Changes the owner and group of files or directories.",
		Danger:      DangerMedium,
		Flags: map[string]string{
			"-R": "Changes ownership recursively.",
		},
	},
	"curl": {
		Description: "Transfers data from or to a server, using one of the supported protocols (HTTP, HTTPS, FTP, etc.).",
		Danger:      DangerMedium,
		Flags: map[string]string{
			"-o": "Writes output to the given file instead of stdout.",
			"-O": "Writes output to a file named like the remote file.",
			"-s": "Silent mode: no progress meter or error messages.",
			"-L": "Follows redirects.",
		},
	},
	"wget": {
		Description: "A non-interactive network downloader.",
		Danger:      DangerMedium,
		Flags: map[string]string{
			"-O": "Writes documents to the given file.",
			"-q": "Quiet: no output.",
		},
	},
	"bash": {
		Description: "The Bourne-Again SHell, a command language interpreter.",
		Danger:      DangerMedium,
		Flags: map[string]string{
			"-c": "Reads commands from the following string.",
		},
	},
	"sh": {
		Description: "The standard command language interpreter.",
		Danger:      DangerMedium,
		Flags: map[string]string{
			"-c": "Reads commands from the following string.",
		},
	},
	":(){ :|:& };:": {
		Description: "A fork bomb. It is a denial-of-service attack where a process continually replicates itself to deplete available system resources, slowing down or crashing the system.",
		Danger:      DangerCritical,
	},
	"grep": {
		Description: "Searches for patterns in text files.",
		Danger:      DangerLow,
		Flags: map[string]string{
			"-i": "Ignores case distinctions in patterns and data.",
			"-v": "Inverts the sense of matching, to select non-matching lines.",
			"-r": "Recursively searches subdirectories.",
			"-n": "Prefixes each matching line with its line number.",
			"-E": "Interprets the pattern as an extended regular expression.",
			"-c": "Prints only a count of matching lines per file.",
		},
	},
	"find": {
		Description: "Searches for files in a directory hierarchy.",
		Danger:      DangerLow,
		Flags: map[string]string{
			"-name":   "Searches for files with a specific name.",
			"-type":   "Searches for files of a specific type (e.g., f for file, d for directory).",
			"-delete": "Deletes found files. This is a dangerous flag.",
		},
	},
	"awk": {
		Description: "A versatile programming language for working on files.",
		Danger:      DangerLow,
		Flags: map[string]string{
			"-F": "Specifies a field separator.",
		},
	},
	"echo": {
		Description: "Displays a line of text.",
		Danger:      DangerLow,
		Flags: map[string]string{
			"-n": "Does not output the trailing newline.",
			"-e": "Enables interpretation of backslash escapes.",
		},
	},
	"kill": {
		Description: "Sends a signal to a process, by default SIGTERM to terminate it.",
		Danger:      DangerMedium,
		Flags: map[string]string{
			"-l": "Lists signal names.",
			"-s": "Specifies the signal to send.",
		},
	},
	"killall": {
		Description: "Kills processes by name.",
		Danger:      DangerMedium,
		Flags: map[string]string{
			"-s": "Specifies the signal to send.",
			"-u": "Kills only processes owned by the given user.",
		},
	},
	"cat": {
		Description: "Concatenates files and prints them to standard output.",
		Danger:      DangerLow,
		Flags: map[string]string{
			"-n": "Numbers all output lines.",
			"-A": "Shows all non-printing characters.",
		},
	},
	"tar": {
		Description: "Archives files to and extracts files from tape or disk archives.",
		Danger:      DangerLow,
		Flags: map[string]string{
			"-x": "Extracts files from an archive.",
			"-c": "Creates a new archive.",
			"-z": "Filters the archive through gzip.",
			"-f": "Uses the following archive file.",
			"-v": "Verbosely lists files processed.",
		},
	},
	"ps": {
		Description: "Reports a snapshot of the current processes.",
		Danger:      DangerLow,
		Flags: map[string]string{
			"-e": "Selects all processes.",
			"-f": "Does a full-format listing.",
		},
	},
	"mkdir": {
		Description: "Creates directories.",
		Danger:      DangerLow,
		Flags: map[string]string{
			"-p": "Creates parent directories as needed; no error if existing.",
		},
	},
}
