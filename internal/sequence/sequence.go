package sequence

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Sequence describes one contiguous frame-file pattern found on disk.
type Sequence struct {
	Dir   string // Directory containing the frames.
	Head  string // Filename prefix before the frame number.
	Ext   string // Dot-extension, e.g. ".exr".
	Pad   int    // Digit width of the frame number.
	Start int    // Lowest frame number present.
	End   int    // Highest frame number present.
	Count int    // Number of files matched.
}

// reFrameSuffix matches the trailing digit run immediately before the final
// dot-extension: "shot.0100.exr" -> ("0100", ".exr"). Files without such a
// run are not sequence members.
var reFrameSuffix = regexp.MustCompile(`(\d+)(\.[^.]+)$`)

// DetectPadding returns the frame-number padding width and dot-extension of
// filename, or ok=false when the name has no trailing digit run before the
// final extension.
func DetectPadding(filename string) (pad int, ext string, ok bool) {
	m := reFrameSuffix.FindStringSubmatch(filename)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), m[2], true
}

// FramePath returns the on-disk path of frame n, re-padded to the
// sequence's digit width.
func (s Sequence) FramePath(n int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("%s%0*d%s", s.Head, s.Pad, n, s.Ext))
}

// Pattern returns the printf-style input pattern for the whole sequence,
// e.g. "/renders/ACD1000_CMP.%04d.exr".
func (s Sequence) Pattern() string {
	return filepath.Join(s.Dir, fmt.Sprintf("%s%%0%dd%s", s.Head, s.Pad, s.Ext))
}

// Name returns the sequence head with trailing dots, then trailing
// underscores, stripped. Used for output filenames and log lines.
func (s Sequence) Name() string {
	return strings.TrimRight(strings.TrimRight(s.Head, "."), "_")
}

// reReviewTag matches the supervisor/comp review suffixes appended to shot
// codes in render names ("ACD1000_CMP_v003" -> tag starts at "_CMP").
var reReviewTag = regexp.MustCompile(`_SUP.*|_CMP.*`)

// ShotID returns the bare shot code for burn-ins: the sequence name
// truncated at the first review-tag marker.
func (s Sequence) ShotID() string {
	return reReviewTag.ReplaceAllString(s.Name(), "")
}

// groupKey identifies one sequence within one directory. Two files with the
// same head but different padding widths deliberately land in different
// groups.
type groupKey struct {
	dir  string
	head string
	ext  string
	pad  int
}

// Scan walks root recursively and groups matching files into Sequence
// records. Only files with the given dot-extension (matched case as given)
// are considered; when filter is non-empty, the filename must contain it.
// Within each group, filenames are sorted lexicographically — with a fixed
// padding width this is numeric order — and the extent is parsed from the
// first and last names. Records are returned sorted by directory then head
// for deterministic batch order.
func Scan(root, ext, filter string) ([]Sequence, error) {
	groups := make(map[groupKey][]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, ext) {
			return nil
		}
		if filter != "" && !strings.Contains(name, filter) {
			return nil
		}
		pad, fext, ok := DetectPadding(name)
		if !ok {
			return nil
		}
		head := name[:len(name)-pad-len(fext)]
		key := groupKey{dir: filepath.Dir(path), head: head, ext: fext, pad: pad}
		groups[key] = append(groups[key], name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var seqs []Sequence
	for key, files := range groups {
		sort.Strings(files)

		start, ok1 := frameNumber(files[0])
		end, ok2 := frameNumber(files[len(files)-1])
		if !ok1 || !ok2 {
			continue
		}

		seqs = append(seqs, Sequence{
			Dir:   key.dir,
			Head:  key.head,
			Ext:   key.ext,
			Pad:   key.pad,
			Start: start,
			End:   end,
			Count: len(files),
		})
	}

	sort.Slice(seqs, func(i, j int) bool {
		if seqs[i].Dir != seqs[j].Dir {
			return seqs[i].Dir < seqs[j].Dir
		}
		if seqs[i].Head != seqs[j].Head {
			return seqs[i].Head < seqs[j].Head
		}
		return seqs[i].Pad < seqs[j].Pad
	})
	return seqs, nil
}

// frameNumber parses the trailing digit run of a sequence member filename.
func frameNumber(filename string) (int, bool) {
	m := reFrameSuffix.FindStringSubmatch(filename)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
