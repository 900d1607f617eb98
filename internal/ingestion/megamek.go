// Package ingestion reads MegaMek .mtf unit files and builds Meks from them.
package ingestion

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMissingChassis is returned for files without a chassis line.
var ErrMissingChassis = errors.New("missing chassis field")

// MTFData holds the parsed contents of a MegaMek .mtf file.
type MTFData struct {
	Chassis    string
	Model      string
	MulID      int
	Config     string
	TechBase   string
	Era        int
	Source     string
	RulesLevel int

	Mass         int
	EngineRating int
	EngineType   string
	Structure    string
	Myomer       string
	Cockpit      string
	Gyro         string

	HeatSinkCount int
	HeatSinkType  string

	WalkMP int
	JumpMP int

	ArmorType   string
	ArmorValues map[string]int // location abbreviation -> armor points; RTL/RTR/RTC are rear

	Weapons []WeaponEntry

	// LocationEquipment lists the critical slots of each location block,
	// keyed by the block header ("Left Arm", "Front Right Leg").
	LocationEquipment map[string][]string
}

// WeaponEntry is a weapon from the Weapons:N summary block.
type WeaponEntry struct {
	Name     string
	Location string
}

// armorKeys maps "<abbr> armor" keys to the stored location.
var armorKeys = map[string]string{
	"la armor": "LA", "ra armor": "RA", "lt armor": "LT", "rt armor": "RT",
	"ct armor": "CT", "hd armor": "HD", "ll armor": "LL", "rl armor": "RL",
	"rtl armor": "RTL", "rtr armor": "RTR", "rtc armor": "RTC",
	"fll armor": "FLL", "frl armor": "FRL", "rll armor": "RLL", "rrl armor": "RRL",
}

// locationHeaders are the location block headers, quad legs included.
var locationHeaders = map[string]string{
	"Left Arm:": "Left Arm", "Right Arm:": "Right Arm",
	"Left Torso:": "Left Torso", "Right Torso:": "Right Torso", "Center Torso:": "Center Torso",
	"Head:": "Head", "Left Leg:": "Left Leg", "Right Leg:": "Right Leg",
	"Front Left Leg:": "Front Left Leg", "Front Right Leg:": "Front Right Leg",
	"Rear Left Leg:": "Rear Left Leg", "Rear Right Leg:": "Rear Right Leg",
}

// ParseMTF reads a MegaMek .mtf file and returns structured data.
func ParseMTF(path string) (*MTFData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mtf: %w", err)
	}
	defer f.Close()
	return ParseMTFReader(f)
}

// ParseMTFReader parses .mtf content from r.
func ParseMTFReader(r io.Reader) (*MTFData, error) {
	data := &MTFData{
		ArmorValues:       make(map[string]int),
		LocationEquipment: make(map[string][]string),
	}

	scanner := bufio.NewScanner(r)
	// lore lines can run long
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var currentLocation string
	var inWeapons bool

	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" {
			// location blocks end at a blank line
			currentLocation = ""
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		if loc, ok := locationHeaders[trimmed]; ok {
			currentLocation = loc
			inWeapons = false
			continue
		}
		if strings.HasPrefix(strings.ToLower(trimmed), "weapons:") {
			inWeapons = true
			currentLocation = ""
			continue
		}
		if currentLocation != "" {
			data.LocationEquipment[currentLocation] = append(data.LocationEquipment[currentLocation], trimmed)
			continue
		}
		if inWeapons {
			if name, loc, ok := strings.Cut(trimmed, ","); ok {
				data.Weapons = append(data.Weapons, WeaponEntry{
					Name:     strings.TrimSpace(name),
					Location: strings.TrimSpace(loc),
				})
				continue
			}
			inWeapons = false
		}

		key, val, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)

		if loc, ok := armorKeys[key]; ok {
			data.ArmorValues[loc] = parseArmorValue(val)
			continue
		}
		switch key {
		case "chassis":
			data.Chassis = val
		case "model":
			data.Model = val
		case "mul id":
			data.MulID, _ = strconv.Atoi(val)
		case "config":
			data.Config = val
		case "techbase":
			data.TechBase = val
		case "era":
			data.Era, _ = strconv.Atoi(val)
		case "source":
			data.Source = val
		case "rules level":
			data.RulesLevel, _ = strconv.Atoi(val)
		case "mass":
			data.Mass, _ = strconv.Atoi(val)
		case "engine":
			data.EngineRating, data.EngineType = parseEngine(val)
		case "structure":
			data.Structure = val
		case "myomer":
			data.Myomer = val
		case "cockpit":
			data.Cockpit = val
		case "gyro":
			data.Gyro = val
		case "heat sinks":
			data.HeatSinkCount, data.HeatSinkType = parseHeatSinks(val)
		case "walk mp":
			data.WalkMP, _ = strconv.Atoi(val)
		case "jump mp":
			data.JumpMP, _ = strconv.Atoi(val)
		case "armor":
			data.ArmorType = val
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan mtf: %w", err)
	}
	if data.Chassis == "" {
		return nil, ErrMissingChassis
	}
	return data, nil
}

// parseArmorValue handles both "26" and patchwork "Reactive(Inner Sphere):26".
func parseArmorValue(val string) int {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if idx := strings.LastIndex(val, ":"); idx >= 0 {
		if n, err := strconv.Atoi(val[idx+1:]); err == nil {
			return n
		}
	}
	return 0
}

// parseEngine parses "300 Fusion Engine(IS)" -> (300, "Fusion Engine(IS)")
func parseEngine(val string) (int, string) {
	rating, rest, ok := strings.Cut(val, " ")
	n, _ := strconv.Atoi(rating)
	if !ok {
		return n, ""
	}
	return n, rest
}

// parseHeatSinks parses "14 IS Double" -> (14, "IS Double")
func parseHeatSinks(val string) (int, string) {
	count, rest, ok := strings.Cut(val, " ")
	n, _ := strconv.Atoi(count)
	if !ok {
		return n, "Single"
	}
	return n, rest
}

// TotalArmor returns the sum of all armor values.
func (d *MTFData) TotalArmor() int {
	total := 0
	for _, v := range d.ArmorValues {
		total += v
	}
	return total
}

// FullName returns "Chassis Model" or just "Chassis" if model is empty.
func (d *MTFData) FullName() string {
	if d.Model == "" {
		return d.Chassis
	}
	return d.Chassis + " " + d.Model
}

func (d *MTFData) IsQuad() bool {
	return strings.Contains(strings.ToLower(d.Config), "quad")
}

func (d *MTFData) IsClan() bool {
	return strings.Contains(strings.ToLower(d.TechBase), "clan")
}
