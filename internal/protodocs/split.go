// Package protodocs раскладывает описание протокола obs-websocket
// (protocol.json) на отдельные файлы: enums.json, events.json и по файлу
// на каждую категорию запросов.
package protodocs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type protocol struct {
	Enums    json.RawMessage   `json:"enums"`
	Events   json.RawMessage   `json:"events"`
	Requests []json.RawMessage `json:"requests"`
}

// Split читает in и пишет файлы в outDir (создаётся при необходимости).
// Порядок запросов внутри категории и порядок ключей сохраняются.
// Возвращает отсортированные пути записанных файлов.
func Split(in, outDir string) ([]string, error) {
	raw, err := os.ReadFile(in)
	if err != nil {
		return nil, fmt.Errorf("read protocol: %w", err)
	}
	var p protocol
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode protocol %s: %w", in, err)
	}
	if p.Requests == nil {
		return nil, errors.New("protocol: missing requests")
	}

	files := map[string]any{
		"enums":  map[string]json.RawMessage{"enums": orNull(p.Enums)},
		"events": map[string]json.RawMessage{"events": orNull(p.Events)},
	}
	byCategory := map[string][]json.RawMessage{}
	for i, req := range p.Requests {
		var head struct {
			Category string `json:"category"`
		}
		if err := json.Unmarshal(req, &head); err != nil {
			return nil, fmt.Errorf("request #%d: %w", i, err)
		}
		if head.Category == "" {
			return nil, fmt.Errorf("request #%d: missing category", i)
		}
		byCategory[head.Category] = append(byCategory[head.Category], req)
	}
	for category, reqs := range byCategory {
		name := fileName(category)
		if _, taken := files[name]; taken {
			return nil, fmt.Errorf("category %q collides with %s.json", category, name)
		}
		files[name] = map[string][]json.RawMessage{"requests": reqs}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", outDir, err)
	}
	paths := make([]string, 0, len(files))
	for name, data := range files {
		path := filepath.Join(outDir, name+".json")
		if err := writeJSON(path, data); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

func fileName(category string) string {
	return strings.ReplaceAll(category, " ", "_")
}

func orNull(m json.RawMessage) json.RawMessage {
	if len(m) == 0 {
		return json.RawMessage("null")
	}
	return m
}

func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	// без завершающего перевода строки, как у json.dump
	out := bytes.TrimRight(buf.Bytes(), "\n")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
