package minifiles

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/arthur-debert/minifiles/pkg/logging"
	"github.com/spf13/cobra"
)

// DefaultEditor is used when neither VISUAL nor EDITOR is set
const DefaultEditor = "vi"

// listingExt is the extension of the files handed to the editor
const listingExt = ".minifiles"

// editorFunc opens files for editing and returns once the user is done
type editorFunc func(cmd *cobra.Command, files []string) error

// runEditor is replaced in tests
var runEditor editorFunc = spawnEditor

// editorCommand returns the editor command line from VISUAL or EDITOR
func editorCommand() []string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(name)); len(fields) > 0 {
			return fields
		}
	}
	return []string{DefaultEditor}
}

func spawnEditor(cmd *cobra.Command, files []string) error {
	argv := append(editorCommand(), files...)
	logger := logging.GetLogger("cmd.edit")
	logger.Debug().Strs("argv", argv).Msg("Starting editor")

	c := exec.Command(argv[0], argv[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = cmd.ErrOrStderr()
	if err := c.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrCancelled, MsgErrEditor, argv[0])
	}
	return nil
}

// listingFile names the file for the i-th listing after its directory
func listingFile(tmp string, i int, dir string) string {
	base := filepath.Base(dir)
	if base == string(filepath.Separator) || base == "." {
		base = "root"
	}
	return filepath.Join(tmp, fmt.Sprintf("%02d-%s%s", i+1, base, listingExt))
}

// writeListings writes one file per listing and returns their paths in order
func writeListings(tmp string, listings []explorer.Listing) ([]string, error) {
	files := make([]string, len(listings))
	for i, l := range listings {
		files[i] = listingFile(tmp, i, l.Dir)
		content := strings.Join(l.Lines, "\n")
		if len(l.Lines) > 0 {
			content += "\n"
		}
		if err := os.WriteFile(files[i], []byte(content), 0o600); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, MsgErrWriteList, l.Dir)
		}
	}
	return files, nil
}

// readListings reads the edited files back, keyed by listing directory
func readListings(files []string, listings []explorer.Listing) (map[string][]string, error) {
	lines := make(map[string][]string, len(listings))
	for i, l := range listings {
		data, err := os.ReadFile(files[i])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, MsgErrReadList, l.Dir)
		}
		lines[l.Dir] = splitLines(string(data))
	}
	return lines, nil
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return []string{}
	}
	return strings.Split(content, "\n")
}
