// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

// Package limits loads and validates the sFlow decoder's resource caps
// from an operator-supplied YAML file, overlaid on top of
// sflow.DefaultLimits, and can watch that file for live changes.
package limits

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"akvorado/sflow/inlet/flow/decoder/sflow"
)

var validate = validator.New()

// Load reads path, merges it over sflow.DefaultLimits and validates the
// result. An empty path returns the defaults unchanged.
func Load(path string) (sflow.Limits, error) {
	limits := sflow.DefaultLimits()
	if path == "" {
		return limits, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return sflow.Limits{}, fmt.Errorf("reading limits file: %w", err)
	}

	var overlay map[string]any
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return sflow.Limits{}, fmt.Errorf("parsing limits file: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &limits,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return sflow.Limits{}, fmt.Errorf("building decoder: %w", err)
	}
	if err := decoder.Decode(overlay); err != nil {
		return sflow.Limits{}, fmt.Errorf("decoding limits file: %w", err)
	}

	if err := validate.Struct(limits); err != nil {
		return sflow.Limits{}, fmt.Errorf("invalid limits: %w", err)
	}
	return limits, nil
}

// Watch reloads path on every write and delivers the new Limits to onChange.
// It never feeds a value that failed validation to onChange — a bad edit
// logs a warning and is otherwise ignored, leaving the previous Limits in
// effect. Watch runs until the caller closes the returned watcher or the
// process exits; the core decoder itself stays synchronous and is handed a
// fresh Limits value per call, not a live pointer into this watcher.
func Watch(path string, logger zerolog.Logger, onChange func(sflow.Limits)) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching limits file: %w", err)
	}

	go func() {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				l, err := Load(path)
				if err != nil {
					logger.Warn().Err(err).Str("path", path).Msg("ignoring invalid limits reload")
					continue
				}
				onChange(l)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("limits watcher error")
			}
		}
	}()

	return w, nil
}
