package models

import "github.com/JustinWhittecar/mekcore/internal/rules"

// UnitSummary is the catalog row for one unit design.
type UnitSummary struct {
	ID            int64   `json:"id"`
	UUID          string  `json:"uuid"`
	Chassis       string  `json:"chassis"`
	Model         string  `json:"model"`
	Name          string  `json:"name"`
	UnitType      string  `json:"unit_type"`
	Tonnage       float64 `json:"tonnage"`
	TechBase      string  `json:"tech_base"`
	IntroYear     int     `json:"intro_year,omitempty"`
	Era           string  `json:"era,omitempty"`
	RulesLevel    string  `json:"rules_level,omitempty"`
	TechLevel     string  `json:"tech_level,omitempty"`
	WalkMP        int     `json:"walk_mp"`
	RunMP         int     `json:"run_mp"`
	JumpMP        int     `json:"jump_mp"`
	ArmorTotal    int     `json:"armor_total"`
	InternalTotal int     `json:"internal_total"`
	BV            *int    `json:"battle_value,omitempty"`
	GenericBV     int     `json:"generic_bv"`
	MulID         *int    `json:"mul_id,omitempty"`
	Source        string  `json:"source,omitempty"`
}

// UnitFilter narrows a catalog listing. Zero fields do not filter.
type UnitFilter struct {
	Name     string
	UnitType string
	TechBase string
	MinTons  float64
	MaxTons  float64
	MaxYear  int
	Limit    int
	Offset   int
}

// EvaluateRequest asks for movement, piloting and BV figures of a design
// under given conditions.
type EvaluateRequest struct {
	MTF        string            `json:"mtf"`
	Conditions *rules.Conditions `json:"conditions,omitempty"`
	Heat       int               `json:"heat"`
	Gunnery    *int              `json:"gunnery,omitempty"`
	Piloting   *int              `json:"piloting,omitempty"`
	Year       int               `json:"year,omitempty"`
	UseMASC    bool              `json:"use_masc"`
}

type EvaluateResponse struct {
	Name            string   `json:"name"`
	UnitType        string   `json:"unit_type"`
	TechBase        string   `json:"tech_base"`
	WalkMP          int      `json:"walk_mp"`
	RunMP           int      `json:"run_mp"`
	JumpMP          int      `json:"jump_mp"`
	PilotingTarget  int      `json:"piloting_target"`
	PilotingDesc    string   `json:"piloting_desc"`
	BV              int      `json:"battle_value"`
	AdjustedBV      int      `json:"adjusted_bv"`
	GenericBV       int      `json:"generic_bv"`
	Crippled        bool     `json:"crippled"`
	TechLevel       string   `json:"tech_level"`
	AvailableInYear bool     `json:"available_in_year"`
	Era             string   `json:"era,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}
