package lib

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/types"
)

// Commit object layout:
//
//	parent <hash-or-empty>
//	message <escaped text>
//	file <escaped path>        (one per path, sorted)
//	<blank line>
//	--FILES--
//	##<escaped path> <length>
//	<length raw bytes>
//	--END--
//
// Message and paths are escaped so they never span lines. File contents are
// length-prefixed and never inspected, so they may contain any byte sequence,
// including the delimiter lines.
const (
	parentPrefix  = "parent "
	messagePrefix = "message "
	filePrefix    = "file "
	filesMarker   = "--FILES--"
	entryPrefix   = "##"
	endMarker     = "--END--"
)

var fieldEscaper = strings.NewReplacer("\\", "\\\\", "\n", "\\n", "\r", "\\r")

// SortedPaths returns the keys of a snapshot in lexicographic order.
func SortedPaths(snapshot types.Snapshot) []string {
	paths := make([]string, 0, len(snapshot))
	for path := range snapshot {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// EncodeCommit serializes commit metadata and a full snapshot into the
// on-disk object format.
func EncodeCommit(parent, message string, snapshot types.Snapshot) []byte {
	paths := SortedPaths(snapshot)

	var buf bytes.Buffer
	buf.WriteString(parentPrefix + parent + "\n")
	buf.WriteString(messagePrefix + fieldEscaper.Replace(message) + "\n")
	for _, path := range paths {
		buf.WriteString(filePrefix + fieldEscaper.Replace(path) + "\n")
	}
	buf.WriteString("\n")

	buf.WriteString(filesMarker + "\n")
	for _, path := range paths {
		content := snapshot[path]
		fmt.Fprintf(&buf, "%s%s %d\n", entryPrefix, fieldEscaper.Replace(path), len(content))
		buf.Write(content)
		buf.WriteString("\n" + endMarker + "\n")
	}
	return buf.Bytes()
}

// DecodeCommit parses an encoded commit object. An object without a files
// section decodes to an empty snapshot. The returned Commit has no Hash set.
func DecodeCommit(data []byte) (types.Commit, error) {
	commit := types.Commit{
		Files:    []string{},
		Snapshot: make(types.Snapshot),
	}

	rest := data
	sawParent := false
	for len(rest) > 0 {
		line, remaining, found := bytes.Cut(rest, []byte("\n"))
		rest = remaining
		if len(line) == 0 {
			break
		}
		if !found {
			// Truncated header: keep what was parsed.
			rest = nil
		}

		text := string(line)
		switch {
		case strings.HasPrefix(text, parentPrefix):
			commit.Parent = strings.TrimPrefix(text, parentPrefix)
			sawParent = true
		case strings.HasPrefix(text, messagePrefix):
			message, err := unescapeField(strings.TrimPrefix(text, messagePrefix))
			if err != nil {
				return types.Commit{}, err
			}
			commit.Message = message
		case strings.HasPrefix(text, filePrefix):
			path, err := unescapeField(strings.TrimPrefix(text, filePrefix))
			if err != nil {
				return types.Commit{}, err
			}
			commit.Files = append(commit.Files, path)
		default:
			return types.Commit{}, fmt.Errorf("%w: unexpected header line %q", ErrCorruptRepository, text)
		}
	}
	if !sawParent {
		return types.Commit{}, fmt.Errorf("%w: commit object has no parent line", ErrCorruptRepository)
	}

	if !bytes.HasPrefix(rest, []byte(filesMarker+"\n")) {
		return commit, nil
	}
	rest = rest[len(filesMarker)+1:]

	trailer := []byte("\n" + endMarker + "\n")
	for len(rest) > 0 {
		line, remaining, found := bytes.Cut(rest, []byte("\n"))
		if !found || !bytes.HasPrefix(line, []byte(entryPrefix)) {
			return types.Commit{}, fmt.Errorf("%w: malformed file entry", ErrCorruptRepository)
		}

		entry := string(line[len(entryPrefix):])
		sep := strings.LastIndexByte(entry, ' ')
		if sep < 0 {
			return types.Commit{}, fmt.Errorf("%w: file entry %q has no length", ErrCorruptRepository, entry)
		}
		path, err := unescapeField(entry[:sep])
		if err != nil {
			return types.Commit{}, err
		}
		length, err := strconv.Atoi(entry[sep+1:])
		if err != nil || length < 0 {
			return types.Commit{}, fmt.Errorf("%w: invalid length for %q", ErrCorruptRepository, path)
		}

		if len(remaining) < length+len(trailer) || !bytes.Equal(remaining[length:length+len(trailer)], trailer) {
			return types.Commit{}, fmt.Errorf("%w: truncated content for %q", ErrCorruptRepository, path)
		}
		commit.Snapshot[path] = append([]byte{}, remaining[:length]...)
		rest = remaining[length+len(trailer):]
	}

	return commit, nil
}

func unescapeField(s string) (string, error) {
	if !strings.Contains(s, "\\") {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("%w: dangling escape in %q", ErrCorruptRepository, s)
		}
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			return "", fmt.Errorf("%w: unknown escape \\%c in %q", ErrCorruptRepository, s[i], s)
		}
	}
	return b.String(), nil
}
