package herostep

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"strings"
)

// Version is the version of the configuration format.
const Version = "v0.3.0"

// Config contains the movement options.
type Config struct {
	Version      string
	Autopickup   bool   // pick up objects when stepping on them
	PickupTypes  string // object classes to pick up (all if empty)
	AutoOpen     bool   // walking into a closed door tries to open it
	Confirm      bool   // ask before attacking peaceful monsters
	ParanoidSwim bool   // refuse to walk into known water or lava
	ParanoidTrap bool   // ask before walking onto a known trap
	MentionWalls bool   // explain why walking into walls fails
	Verbose      bool   // describe terrain features when stepping on them
	SafePet      bool   // swap places with pets instead of attacking them
	Strict       bool   // panic on internal-consistency faults
	LogGame      bool   // mirror game messages to the diagnostics logger
}

// DefaultConfig returns the default options.
func DefaultConfig() Config {
	return Config{
		Version:     Version,
		Autopickup:  true,
		PickupTypes: `$"?!/="+`,
		AutoOpen:    true,
		Confirm:     true,
		Verbose:     true,
		SafePet:     true,
	}
}

// ConfigSave serializes the configuration.
func (c *Config) ConfigSave() ([]byte, error) {
	data := bytes.Buffer{}
	enc := gob.NewEncoder(&data)
	err := enc.Encode(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data.Bytes(), nil
}

// DecodeConfigSave retrieves a configuration encoded with ConfigSave.
func DecodeConfigSave(data []byte) (*Config, error) {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	c := &Config{}
	err := dec.Decode(c)
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

// TypeFilter is the default autopickup filter: it accepts objects whose
// class appears in the string. An empty filter accepts everything.
type TypeFilter string

// Wants implements PickupFilter.
func (tf TypeFilter) Wants(o Object) bool {
	return tf == "" || strings.ContainsRune(string(tf), rune(o.Class))
}
