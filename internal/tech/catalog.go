package tech

// Progressions for the construction options the unit builders understand.
// Equipment mounted by name gets its progression from the ingestion layer.

func avail(sl, sw, clan, da Availability) [numEras]Availability {
	return [numEras]Availability{sl, sw, clan, da}
}

var (
	FusionEngine = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 2289, Production: 2300, Common: 2310},
		Clan:         Dates{Production: 2807, Common: 2807},
		Rating:       RatingD,
		Availability: avail(AvailC, AvailE, AvailD, AvailC),
		StaticLevel:  LevelIntroductory,
	}
	ICEngine = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Production: 1950, Common: 1950},
		Clan:         Dates{Production: 1950, Common: 1950},
		Rating:       RatingC,
		Availability: avail(AvailA, AvailA, AvailA, AvailA),
		StaticLevel:  LevelIntroductory,
	}
	XLEngine = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 2556, Production: 2579, Common: 3045, Extinct: 2865, Reintroduced: 3035},
		Clan:         Dates{Production: 2827, Common: 2829},
		Rating:       RatingE,
		Availability: avail(AvailD, AvailF, AvailE, AvailD),
		StaticLevel:  LevelStandard,
	}
	LightEngine = &Advancement{
		Base:         BaseInnerSphere,
		IS:           Dates{Prototype: 3055, Production: 3062, Common: 3068},
		Rating:       RatingE,
		Availability: avail(AvailX, AvailX, AvailE, AvailD),
		StaticLevel:  LevelStandard,
	}
	XXLEngine = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 3055, Production: 3130},
		Clan:         Dates{Prototype: 2954, Production: 3130},
		Rating:       RatingF,
		Availability: avail(AvailX, AvailX, AvailF, AvailE),
		StaticLevel:  LevelExperimental,
	}
	CompactEngine = &Advancement{
		Base:         BaseInnerSphere,
		IS:           Dates{Prototype: 3060, Production: 3068, Common: 3072},
		Rating:       RatingE,
		Availability: avail(AvailX, AvailX, AvailE, AvailD),
		StaticLevel:  LevelStandard,
	}

	StandardStructure = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Production: 2439, Common: 2470},
		Clan:         Dates{Production: 2807, Common: 2807},
		Rating:       RatingD,
		Availability: avail(AvailC, AvailC, AvailC, AvailC),
		StaticLevel:  LevelIntroductory,
	}
	EndoSteel = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 2471, Production: 2487, Common: 3040, Extinct: 2850, Reintroduced: 3035},
		Clan:         Dates{Production: 2827, Common: 2827},
		Rating:       RatingE,
		Availability: avail(AvailD, AvailF, AvailE, AvailD),
		StaticLevel:  LevelStandard,
	}
	ReinforcedStructure = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 3057, Production: 3084},
		Clan:         Dates{Prototype: 3057, Production: 3084},
		Rating:       RatingE,
		Availability: avail(AvailX, AvailX, AvailE, AvailD),
		StaticLevel:  LevelAdvanced,
	}
	CompositeStructure = &Advancement{
		Base:         BaseInnerSphere,
		IS:           Dates{Prototype: 3061, Production: 3082},
		Rating:       RatingE,
		Availability: avail(AvailX, AvailX, AvailE, AvailE),
		StaticLevel:  LevelAdvanced,
	}

	TSM = &Advancement{
		Base:         BaseInnerSphere,
		IS:           Dates{Prototype: 3028, Production: 3050, Common: 3050},
		Rating:       RatingE,
		Availability: avail(AvailX, AvailX, AvailE, AvailD),
		StaticLevel:  LevelStandard,
	}
	MASC = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 2730, Production: 2740, Common: 3040, Extinct: 2795, Reintroduced: 3035},
		Clan:         Dates{Production: 2827, Common: 2835},
		Rating:       RatingE,
		Availability: avail(AvailD, AvailF, AvailE, AvailD),
		StaticLevel:  LevelStandard,
	}
	Supercharger = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 3068, Production: 3078},
		Clan:         Dates{Prototype: 3068, Production: 3078},
		Rating:       RatingC,
		Availability: avail(AvailX, AvailX, AvailD, AvailD),
		StaticLevel:  LevelAdvanced,
	}
	DoubleHeatSink = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 2559, Production: 2567, Common: 3045, Extinct: 2865, Reintroduced: 3040},
		Clan:         Dates{Production: 2825, Common: 2829},
		Rating:       RatingE,
		Availability: avail(AvailC, AvailE, AvailD, AvailC),
		StaticLevel:  LevelStandard,
	}
	CASE = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 2452, Production: 2476, Common: 3045, Extinct: 2840, Reintroduced: 3036},
		Clan:         Dates{Production: 2824, Common: 2825},
		Rating:       RatingC,
		Availability: avail(AvailC, AvailF, AvailD, AvailC),
		StaticLevel:  LevelStandard,
	}
	CASEII = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 3064, Production: 3082},
		Clan:         Dates{Prototype: 3062, Production: 3082},
		Rating:       RatingD,
		Availability: avail(AvailX, AvailX, AvailF, AvailE),
		StaticLevel:  LevelAdvanced,
	}

	MekChassis = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 2439, Production: 2443, Common: 2470},
		Clan:         Dates{Production: 2807, Common: 2807},
		Rating:       RatingD,
		Availability: avail(AvailC, AvailC, AvailC, AvailC),
		StaticLevel:  LevelIntroductory,
	}
	VehicleChassis = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Production: 1950, Common: 1950},
		Clan:         Dates{Production: 1950, Common: 1950},
		Rating:       RatingB,
		Availability: avail(AvailB, AvailB, AvailB, AvailB),
		StaticLevel:  LevelIntroductory,
	}
	FighterChassis = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Production: 2200, Common: 2300},
		Clan:         Dates{Production: 2807, Common: 2807},
		Rating:       RatingD,
		Availability: avail(AvailC, AvailD, AvailC, AvailC),
		StaticLevel:  LevelStandard,
	}
	WarshipChassis = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Prototype: 2295, Production: 2305, Common: 2350, Extinct: 2950, Reintroduced: 3050},
		Clan:         Dates{Production: 2807, Common: 2807},
		Rating:       RatingE,
		Availability: avail(AvailD, AvailX, AvailE, AvailE),
		StaticLevel:  LevelAdvanced,
	}
	EscapePodChassis = &Advancement{
		Base:         BaseAll,
		IS:           Dates{Production: 2350, Common: 2400},
		Clan:         Dates{Production: 2807, Common: 2807},
		Rating:       RatingB,
		Availability: avail(AvailC, AvailC, AvailC, AvailC),
		StaticLevel:  LevelAdvanced,
	}
)
