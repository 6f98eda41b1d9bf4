package config

import (
	"fmt"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// Load reads configuration from path. A missing file is not an error: the
// defaults are returned and flags supply the rest.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseKDL(string(content))
}

// ParseKDL parses a KDL configuration document:
//
//	registry "glcorearb.h" "glext.h"
//	output "opengl.generated.h"
//	prefix "Game"
//	inputs {
//	    include "src/**/*.c"
//	    exclude "src/vendor/**"
//	}
//	ignore "glfwSwapInterval" "glfwMakeContextCurrent"
//	boilerplate true
//	silent false
//	suggestions {
//	    enabled true
//	    threshold 0.9
//	}
//	performance {
//	    max_goroutines 4
//	    debounce_ms 100
//	}
func ParseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "registry":
			cfg.Registry = append(cfg.Registry, collectStringArgs(n)...)
		case "inputs":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "include":
					cfg.Inputs = append(cfg.Inputs, collectStringArgs(cn)...)
				case "exclude":
					cfg.Exclude = append(cfg.Exclude, collectStringArgs(cn)...)
				}
			}
		case "output":
			if s, ok := firstStringArg(n); ok {
				cfg.Output = s
			}
		case "prefix":
			if s, ok := firstStringArg(n); ok {
				cfg.Prefix = s
			}
		case "ignore":
			cfg.Ignore = append(cfg.Ignore, collectStringArgs(n)...)
		case "boilerplate":
			if b, ok := firstBoolArg(n); ok {
				cfg.Boilerplate = b
			}
		case "silent":
			if b, ok := firstBoolArg(n); ok {
				cfg.Silent = b
			}
		case "suggestions":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "enabled":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Suggestions.Enabled = b
					}
				case "threshold":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Suggestions.Threshold = v
					}
				}
			}
		case "performance":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "max_goroutines":
					if v, ok := firstIntArg(cn); ok {
						cfg.Performance.MaxGoroutines = v
					}
				case "debounce_ms":
					if v, ok := firstIntArg(cn); ok {
						cfg.Performance.DebounceMs = v
					}
				}
			}
		}
	}

	return cfg, nil
}

// Helper functions leveraging the kdl-go document model.

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	// Block format: strings appear as child nodes whose name is the value.
	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
