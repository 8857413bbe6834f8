package leaderboard

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec serializes the full entry list for storage.
type Codec interface {
	Name() string
	Marshal(entries []Entry) ([]byte, error)
	Unmarshal(data []byte) ([]Entry, error)
}

// JSONCodec reads and writes the browser-compatible highScores array.
type JSONCodec struct{}

// Name returns "json".
func (JSONCodec) Name() string { return "json" }

// Marshal encodes entries as a JSON array.
func (JSONCodec) Marshal(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}

// Unmarshal decodes a JSON array of entries. A JSON null decodes to no entries.
func (JSONCodec) Unmarshal(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("leaderboard: json decode: %w", err)
	}
	return entries, nil
}

// MsgpackCodec is a compact binary alternative to JSON.
type MsgpackCodec struct{}

// Name returns "msgpack".
func (MsgpackCodec) Name() string { return "msgpack" }

// Marshal encodes entries as a msgpack array.
func (MsgpackCodec) Marshal(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return msgpack.Marshal(entries)
}

// Unmarshal decodes a msgpack array of entries.
func (MsgpackCodec) Unmarshal(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("leaderboard: msgpack decode: %w", err)
	}
	return entries, nil
}

// CodecByName returns the codec registered under name. Empty means json.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("leaderboard: unknown codec %q (want json or msgpack)", name)
	}
}

// DetectCodec guesses which codec produced data. JSON documents start with
// '[', '{' or the literal null; anything else is treated as msgpack.
func DetectCodec(data []byte) Codec {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{' || trimmed[0] == 'n') {
		return JSONCodec{}
	}
	return MsgpackCodec{}
}
