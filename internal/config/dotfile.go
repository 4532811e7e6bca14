package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// LoadDotfileArgs reads the tool's dotfile and returns its contents as
// extra command-line arguments, one flag per non-comment, non-empty line.
// The dotfile location is COOKIECUTTER_CONFIG_PATH if set, else
// ~/.cookiecutterrc. Returns nil if no dotfile is found.
func LoadDotfileArgs() []string {
	path := os.Getenv("COOKIECUTTER_CONFIG_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".cookiecutterrc")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var args []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, line)
	}
	return args
}
