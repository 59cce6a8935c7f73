package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/inlinecontent/pkg/config"
	"github.com/tinyland-inc/inlinecontent/pkg/content"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
	goVersion string
)

func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".inlinecontent", "config.json")
}

// ConfigPath returns the --config flag value when cmd carries one, and the
// default path otherwise.
func ConfigPath(cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return GetConfigPath()
}

func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(ConfigPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// ParseFieldArgs turns key=value arguments into a field mapping typed after
// the variant's schema.
func ParseFieldArgs(kind content.Kind, args []string) (map[string]any, error) {
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid field %q: expected key=value", arg)
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("field %q given more than once", key)
		}
		v, err := content.ParseValue(kind, key, raw)
		if err != nil {
			return nil, err
		}
		fields[key] = v
	}
	return fields, nil
}

// BuildContent parses field arguments, applies config defaults and builds
// the content.
func BuildContent(cfg *config.Config, kind content.Kind, args []string) (content.InlineContent, error) {
	fields, err := ParseFieldArgs(kind, args)
	if err != nil {
		return nil, err
	}
	ApplyDefaults(cfg, kind, fields)
	return content.Build(kind, fields)
}

// ApplyDefaults fills parse_mode on text content from the config.
func ApplyDefaults(cfg *config.Config, kind content.Kind, fields map[string]any) {
	if kind != content.KindText || cfg.Content.DefaultParseMode == "" {
		return
	}
	if _, ok := fields["parse_mode"]; !ok {
		fields["parse_mode"] = cfg.Content.DefaultParseMode
	}
}

// WriteContent prints c as JSON followed by a newline.
func WriteContent(w io.Writer, c content.InlineContent, indent bool) error {
	data, err := content.Marshal(c)
	if err != nil {
		return err
	}
	return writeRaw(w, data, indent)
}

// WriteJSON prints any JSON-encodable value followed by a newline.
func WriteJSON(w io.Writer, v any, indent bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return writeRaw(w, bytes.TrimRight(buf.Bytes(), "\n"), indent)
}

func writeRaw(w io.Writer, data []byte, indent bool) error {
	if indent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	_, err := fmt.Fprintf(w, "%s\n", data)
	return err
}

// FormatVersion returns the version string with optional git commit
func FormatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

// FormatBuildInfo returns build time and go version info
func FormatBuildInfo() (string, string) {
	build := buildTime
	goVer := goVersion
	if goVer == "" {
		goVer = runtime.Version()
	}
	return build, goVer
}

func GetVersion() string {
	return version
}

// WriteFields prints the declared fields of kind, one per line.
func WriteFields(w io.Writer, kind content.Kind) error {
	infos, err := content.Describe(kind)
	if err != nil {
		return err
	}
	for _, f := range infos {
		req := "optional"
		if f.Required {
			req = "required"
		}
		if _, err := fmt.Fprintf(w, "  %-26s %-8s %s\n", f.Name, f.Type, req); err != nil {
			return err
		}
	}
	return nil
}
