// Package output renders a finished batch of flags to a writer or a file.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexedwards/argon2id"
	json "github.com/goccy/go-json"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	Text   Format = "text"   // one flag per line
	JSON   Format = "json"   // array of strings
	YAML   Format = "yaml"   // sequence of strings
	CSV    Format = "csv"    // index,flag with header
	Hashed Format = "hashed" // flag<TAB>argon2id hash
)

// FileMode is the permission of written flag files.
const FileMode = 0o644

// Formats returns all format names.
func Formats() []string {
	return []string{string(Text), string(JSON), string(YAML), string(CSV), string(Hashed)}
}

// ParseFormat resolves a format by name. The empty name is Text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return Text, nil
	case Text, JSON, YAML, CSV, Hashed:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
}

// Writer encodes flags in one format.
type Writer struct {
	format     Format
	hashParams *argon2id.Params
}

// Option configures a Writer.
type Option func(*Writer)

// WithHashParams sets the argon2id parameters of the Hashed format.
func WithHashParams(p *argon2id.Params) Option {
	return func(w *Writer) {
		if p != nil {
			w.hashParams = p
		}
	}
}

// New returns a Writer for format.
func New(format Format, opts ...Option) *Writer {
	w := &Writer{
		format:     format,
		hashParams: argon2id.DefaultParams,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Encode renders flags into memory.
func (w *Writer) Encode(flags []string) ([]byte, error) {
	var buf bytes.Buffer

	if err := w.Write(&buf, flags); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Write renders flags to dst.
func (w *Writer) Write(dst io.Writer, flags []string) error {
	switch w.format {
	case Text, "":
		return writeText(dst, flags)
	case JSON:
		return writeJSON(dst, flags)
	case YAML:
		return writeYAML(dst, flags)
	case CSV:
		return writeCSV(dst, flags)
	case Hashed:
		return w.writeHashed(dst, flags)
	default:
		return errors.Wrapf(ErrUnknownFormat, "format %q", w.format)
	}
}

// WriteFile renders flags to path. The content is encoded first and the
// file is replaced atomically, so a failed run never leaves a partial file.
func (w *Writer) WriteFile(path string, flags []string) error {
	content, err := w.Encode(flags)
	if err != nil {
		return err
	}

	return writeAtomic(path, content)
}

func writeText(dst io.Writer, flags []string) error {
	if _, err := io.WriteString(dst, strings.Join(flags, "\n")+"\n"); err != nil {
		return errors.Wrap(err, "failed to write flags")
	}

	return nil
}

func writeJSON(dst io.Writer, flags []string) error {
	if flags == nil {
		flags = []string{}
	}

	data, err := json.MarshalIndent(flags, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode flags as json")
	}

	if _, err = dst.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "failed to write flags")
	}

	return nil
}

func writeYAML(dst io.Writer, flags []string) error {
	if flags == nil {
		flags = []string{}
	}

	enc := yaml.NewEncoder(dst)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(flags); err != nil {
		return errors.Wrap(err, "failed to encode flags as yaml")
	}

	return errors.Wrap(enc.Close(), "failed to write flags")
}

func writeCSV(dst io.Writer, flags []string) error {
	cw := csv.NewWriter(dst)

	if err := cw.Write([]string{"index", "flag"}); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	for i, flag := range flags {
		if err := cw.Write([]string{strconv.Itoa(i + 1), flag}); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}
	}

	cw.Flush()

	return errors.Wrap(cw.Error(), "failed to write flags")
}

func (w *Writer) writeHashed(dst io.Writer, flags []string) error {
	var buf bytes.Buffer

	for _, flag := range flags {
		hash, err := argon2id.CreateHash(flag, w.hashParams)
		if err != nil {
			return errors.Wrap(err, "failed to hash flag")
		}

		buf.WriteString(flag)
		buf.WriteByte('\t')
		buf.WriteString(hash)
		buf.WriteByte('\n')
	}

	if _, err := buf.WriteTo(dst); err != nil {
		return errors.Wrap(err, "failed to write flags")
	}

	return nil
}

// writeAtomic writes content to a temp file next to path and renames it into place.
func writeAtomic(path string, content []byte) error {
	id, err := gonanoid.New(8) //nolint:mnd
	if err != nil {
		return errors.Wrap(err, "failed to generate temp file id")
	}

	dir := filepath.Dir(path)
	tempPath := filepath.Join(dir, "."+filepath.Base(path)+".tmp-"+id)

	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_EXCL, FileMode)
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}

	success := false

	defer func() {
		if !success {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	// umask may have narrowed the mode
	if err = tempFile.Chmod(FileMode); err != nil {
		return errors.Wrap(err, "failed to set temp file permissions")
	}

	if _, err = tempFile.Write(content); err != nil {
		return errors.Wrap(err, "failed to write content")
	}

	if err = tempFile.Sync(); err != nil {
		return errors.Wrap(err, "failed to sync temp file")
	}

	if err = tempFile.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp file")
	}

	if err = os.Rename(tempPath, path); err != nil {
		return errors.Wrapf(err, "failed to move flags to %s", path)
	}

	success = true

	return nil
}
