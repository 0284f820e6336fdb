// Copyright 2025 The tinylex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/tinylex/tinylex/token"
)

// config is the driver's optional TOML configuration.
type config struct {
	// LogFile, if set, is a path the driver's log records are additionally
	// written to, alongside stderr.
	LogFile string `toml:"log_file"`

	// ContinueOnError makes the driver use lexer.CollectingReporter
	// instead of lexer.DefaultReporter, so a single run reports every
	// lexical error in a file rather than stopping at the first one.
	ContinueOnError bool `toml:"continue_on_error"`

	// TabWidth, when greater than 1, makes reported columns expand tabs to
	// this width instead of counting each as a single code unit. 0 or 1
	// means no expansion.
	TabWidth int `toml:"tab_width"`

	// ExtraKeywords maps additional reserved lexemes to the name of an
	// existing keyword in token.Keywords whose Kind they should share
	// (e.g. `elif = "else"` recognizes "elif" as an ELSE token). It cannot
	// introduce a new Kind, only alias new spellings onto existing ones.
	ExtraKeywords map[string]string `toml:"extra_keywords"`
}

func defaultConfig() config {
	return config{TabWidth: 1}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveExtraKeywords turns the config's lexeme->keyword-name aliases
// into a lexeme->Kind table the lexer can consume, failing if a name
// doesn't match any entry in token.Keywords.
func resolveExtraKeywords(aliases map[string]string) (map[string]token.Kind, error) {
	if len(aliases) == 0 {
		return nil, nil
	}
	extra := make(map[string]token.Kind, len(aliases))
	for lexeme, name := range aliases {
		kind, ok := token.Keywords[name]
		if !ok {
			return nil, fmt.Errorf("extra_keywords: %q aliases unknown keyword %q", lexeme, name)
		}
		extra[lexeme] = kind
	}
	return extra, nil
}
