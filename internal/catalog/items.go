package catalog

import "github.com/dom/rift-companion/internal/domain"

// items is the item catalog in catalog order. Traversal order is the
// recommender's tie-break, so keep additions at the end of their category.
var items = []domain.Item{
	{
		ID:          "infinity_edge",
		Name:        "Infinity Edge",
		Cost:        3400,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 55, CritChance: 25},
		Tags:        tags(domain.TagBurst, domain.TagCrit),
		Description: "Critical Strike damage increased to 230%.",
	},
	{
		ID:          "black_cleaver",
		Name:        "Black Cleaver",
		Cost:        3000,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 40, Health: 350, AbilityHaste: 20},
		Tags:        tags(domain.TagCountersArmor, domain.TagSustained),
		Description: "Reduces enemy armor by up to 24%.",
	},
	{
		ID:          "blade_of_the_ruined_king",
		Name:        "Blade of the Ruined King",
		Cost:        3100,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 20, AttackSpeed: 35},
		Tags:        tags(domain.TagCountersTank, domain.TagSustained),
		Description: "Attacks deal 6% current health damage.",
	},
	{
		ID:          "divine_sunderer",
		Name:        "Divine Sunderer",
		Cost:        3300,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 25, Health: 400, AbilityHaste: 20},
		Tags:        tags(domain.TagCountersTank, domain.TagSustained),
		Description: "Spellblade deals max health damage and heals.",
	},
	{
		ID:          "mortal_reminder",
		Name:        "Mortal Reminder",
		Cost:        3000,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 45, Penetration: 30},
		Tags:        tags(domain.TagCountersHealing, domain.TagCountersArmor),
		Description: "Applies Grievous Wounds and Armor Pen.",
	},
	{
		ID:          "serpents_fang",
		Name:        "Serpent's Fang",
		Cost:        2800,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 50, AbilityHaste: 10},
		Tags:        tags(domain.TagCountersShields, domain.TagBurst),
		Description: "Reduces enemy shields by 50%.",
	},
	{
		ID:          "the_collector",
		Name:        "The Collector",
		Cost:        2900,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 40, CritChance: 25},
		Tags:        tags(domain.TagExecute, domain.TagBurst),
		Description: "Executes enemies below 5% health.",
	},
	{
		ID:          "guardian_angel",
		Name:        "Guardian Angel",
		Cost:        3400,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 40, Armor: 40},
		Tags:        tags(domain.TagRevive, domain.TagDefense),
		Description: "Resurrects upon taking lethal damage.",
	},
	{
		ID:          "steraks_gage",
		Name:        "Sterak's Gage",
		Cost:        3000,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{Health: 400},
		Tags:        tags(domain.TagCountersBurst, domain.TagShield),
		Description: "Grants a shield when taking heavy damage.",
	},
	{
		ID:          "deaths_dance",
		Name:        "Death's Dance",
		Cost:        3100,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 35, Armor: 40, AbilityHaste: 15},
		Tags:        tags(domain.TagCountersBurst, domain.TagSustained),
		Description: "Defers 35% of damage taken into a bleed.",
	},
	{
		ID:          "wits_end",
		Name:        "Wit's End",
		Cost:        2700,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackSpeed: 45, MagicResist: 50},
		Tags:        tags(domain.TagCountersMagical, domain.TagSustained),
		Description: "On-hit magic damage and MR.",
	},
	{
		ID:          "magnetic_blaster",
		Name:        "Magnetic Blaster",
		Cost:        2900,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackSpeed: 35, CritChance: 25},
		Tags:        tags(domain.TagWaveclear, domain.TagBurst),
		Description: "Energized attacks deal splash magic damage.",
	},
	{
		ID:          "galeforce",
		Name:        "Galeforce",
		Cost:        3100,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 30, CritChance: 25, AttackSpeed: 15},
		Tags:        tags(domain.TagMobility, domain.TagExecute),
		Description: "Active: Dash and fire missiles at low health enemies.",
	},
	{
		ID:          "terminus",
		Name:        "Terminus",
		Cost:        3300,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 40, AttackSpeed: 30},
		Tags:        tags(domain.TagCountersTank, domain.TagHybridPen),
		Description: "Alternates between Armor and Magic penetration.",
	},
	{
		ID:          "titanic_hydra",
		Name:        "Titanic Hydra",
		Cost:        3000,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 30, Health: 550},
		Tags:        tags(domain.TagWaveclear, domain.TagScaling),
		Description: "Cleave damage based on max health.",
	},
	{
		ID:          "spear_of_shojin",
		Name:        "Spear of Shojin",
		Cost:        3200,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 50, Health: 300, AbilityHaste: 20},
		Tags:        tags(domain.TagHaste, domain.TagMobility),
		Description: "Basic abilities gain Haste after using Ultimate.",
	},
	{
		ID:          "sundered_sky",
		Name:        "Sundered Sky",
		Cost:        3000,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 40, Health: 300, AbilityHaste: 15},
		Tags:        tags(domain.TagSustained, domain.TagBurst),
		Description: "First attack against a champion crits and heals.",
	},
	{
		ID:          "seryldas_grudge",
		Name:        "Serylda's Grudge",
		Cost:        3000,
		Category:    domain.CategoryOffensivePhysical,
		Stats:       domain.StatBlock{AttackDamage: 40, AbilityHaste: 15, Penetration: 30},
		Tags:        tags(domain.TagSlow, domain.TagCountersArmor),
		Description: "Abilities slow enemies by 30%.",
	},
	{
		ID:          "rabadons_deathcap",
		Name:        "Rabadon's Deathcap",
		Cost:        3400,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 100},
		Tags:        tags(domain.TagBurst, domain.TagScaling),
		Description: "Increases Ability Power by 40%.",
	},
	{
		ID:          "ludens_echo",
		Name:        "Luden's Echo",
		Cost:        3000,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 85, AbilityHaste: 20},
		Tags:        tags(domain.TagBurst, domain.TagWaveclear),
		Description: "Echo deals splash damage on ability hit.",
	},
	{
		ID:          "infinity_orb",
		Name:        "Infinity Orb",
		Cost:        2900,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 85, Health: 200},
		Tags:        tags(domain.TagBurst, domain.TagExecute),
		Description: "Abilities crit against enemies below 35% health.",
	},
	{
		ID:          "liandrys_torment",
		Name:        "Liandry's Torment",
		Cost:        3100,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 70, Health: 250},
		Tags:        tags(domain.TagCountersTank, domain.TagSustained),
		Description: "Burn damage based on max health.",
	},
	{
		ID:          "shattered_queen",
		Name:        "Crown of the Shattered Queen",
		Cost:        3000,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 60, Health: 250, AbilityHaste: 20},
		Tags:        tags(domain.TagCountersBurst, domain.TagDefense),
		Description: "Shield that reduces incoming damage by 70%.",
	},
	{
		ID:          "awakened_soulstealer",
		Name:        "Awakened Soulstealer",
		Cost:        3000,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 65, Health: 150, AbilityHaste: 20},
		Tags:        tags(domain.TagUltimateHaste, domain.TagSnowball),
		Description: "Takedowns reduce Ultimate cooldown.",
	},
	{
		ID:          "crystalline_reflector",
		Name:        "Crystalline Reflector",
		Cost:        2900,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 60, Armor: 45, AbilityHaste: 15},
		Tags:        tags(domain.TagCountersPhysical, domain.TagDefense),
		Description: "Reflects physical damage and reduces it.",
	},
	{
		ID:          "riftmaker",
		Name:        "Riftmaker",
		Cost:        3200,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 80, Health: 150, AbilityHaste: 15, Omnivamp: 12},
		Tags:        tags(domain.TagSustained, domain.TagTrueDamage),
		Description: "Bonus damage that converts to true damage.",
	},
	{
		ID:          "oceanids_trident",
		Name:        "Oceanid's Trident",
		Cost:        2600,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 80, AbilityHaste: 10},
		Tags:        tags(domain.TagCountersShields, domain.TagUtility),
		Description: "Damaging enemies reduces their shields.",
	},
	{
		ID:          "psychic_projector",
		Name:        "Psychic Projector",
		Cost:        3000,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 60, Health: 300},
		Tags:        tags(domain.TagDefense, domain.TagScaling),
		Description: "Grants AP based on bonus health.",
	},
	{
		ID:          "malignance",
		Name:        "Malignance",
		Cost:        3000,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 80, AbilityHaste: 20},
		Tags:        tags(domain.TagUltimateHaste, domain.TagZoneControl),
		Description: "Ultimate creates a zone that shreds MR.",
	},
	{
		ID:          "horizon_focus",
		Name:        "Horizon Focus",
		Cost:        2800,
		Category:    domain.CategoryOffensiveMagical,
		Stats:       domain.StatBlock{AbilityPower: 80, AbilityHaste: 15},
		Tags:        tags(domain.TagBurst, domain.TagVision),
		Description: "Damaging enemies from afar reveals and marks them.",
	},
	{
		ID:          "thornmail",
		Name:        "Thornmail",
		Cost:        2700,
		Category:    domain.CategoryDefensive,
		Stats:       domain.StatBlock{Armor: 75, Health: 200},
		Tags:        tags(domain.TagCountersHealing, domain.TagCountersPhysical),
		Description: "Reflects damage and applies Grievous Wounds.",
	},
	{
		ID:          "force_of_nature",
		Name:        "Force of Nature",
		Cost:        2850,
		Category:    domain.CategoryDefensive,
		Stats:       domain.StatBlock{MagicResist: 50, Health: 350},
		Tags:        tags(domain.TagCountersMagical, domain.TagMobility),
		Description: "Increases MR and MS when taking magic damage.",
	},
	{
		ID:          "heartsteel",
		Name:        "Heartsteel",
		Cost:        3000,
		Category:    domain.CategoryDefensive,
		Stats:       domain.StatBlock{Health: 700, AbilityHaste: 20},
		Tags:        tags(domain.TagScaling, domain.TagCountersBurst),
		Description: "Infinite health scaling via basic attacks.",
	},
	{
		ID:          "frozen_heart",
		Name:        "Frozen Heart",
		Cost:        2700,
		Category:    domain.CategoryDefensive,
		Stats:       domain.StatBlock{Armor: 80, AbilityHaste: 25},
		Tags:        tags(domain.TagCountersAttackSpeed, domain.TagCountersPhysical),
		Description: "Reduces nearby enemies' attack speed.",
	},
	{
		ID:          "randuins_omen",
		Name:        "Randuin's Omen",
		Cost:        2800,
		Category:    domain.CategoryDefensive,
		Stats:       domain.StatBlock{Armor: 60, Health: 400},
		Tags:        tags(domain.TagCountersCrit, domain.TagCountersPhysical),
		Description: "Reduces damage from critical strikes.",
	},
	{
		ID:          "amaranths_twinguard",
		Name:        "Amaranth's Twinguard",
		Cost:        3200,
		Category:    domain.CategoryDefensive,
		Stats:       domain.StatBlock{Armor: 55, MagicResist: 55},
		Tags:        tags(domain.TagHybridResist, domain.TagTenacity),
		Description: "Increases size and resistances in combat.",
	},
	{
		ID:          "kaenic_rookern",
		Name:        "Kaenic Rookern",
		Cost:        3000,
		Category:    domain.CategoryDefensive,
		Stats:       domain.StatBlock{Health: 400, MagicResist: 80, AbilityHaste: 10},
		Tags:        tags(domain.TagCountersMagical, domain.TagShield),
		Description: "Grants a magic shield after not taking damage.",
	},
	{
		ID:          "mantle_of_twelfth_hour",
		Name:        "Mantle of the Twelfth Hour",
		Cost:        2900,
		Category:    domain.CategoryDefensive,
		Stats:       domain.StatBlock{Armor: 50, MagicResist: 50, Health: 200},
		Tags:        tags(domain.TagCountersBurst, domain.TagHeal),
		Description: "Heals and grants speed when low health.",
	},
	{
		ID:          "radiant_virtue",
		Name:        "Radiant Virtue",
		Cost:        3000,
		Category:    domain.CategoryDefensive,
		Stats:       domain.StatBlock{Health: 400, AbilityHaste: 15, Armor: 40, MagicResist: 40},
		Tags:        tags(domain.TagTeamHeal, domain.TagUtility),
		Description: "Heals nearby allies after using Ultimate.",
	},
	{
		ID:          "hollow_radiance",
		Name:        "Hollow Radiance",
		Cost:        2900,
		Category:    domain.CategoryDefensive,
		Stats:       domain.StatBlock{Health: 500, MagicResist: 40},
		Tags:        tags(domain.TagWaveclear, domain.TagCountersMagical),
		Description: "Deals magic damage to nearby enemies.",
	},
	{
		ID:          "boots_mana",
		Name:        "Boots of Mana",
		Cost:        1400,
		Category:    domain.CategoryBoots,
		Stats:       domain.StatBlock{AbilityPower: 60, Penetration: 8},
		Tags:        tags(domain.TagMagicPen, domain.TagMana),
		Description: "Grants AP and Magic Penetration.",
	},
	{
		ID:          "boots_dynamism",
		Name:        "Boots of Dynamism",
		Cost:        1500,
		Category:    domain.CategoryBoots,
		Stats:       domain.StatBlock{AttackDamage: 30, Penetration: 8},
		Tags:        tags(domain.TagArmorPen, domain.TagMobility),
		Description: "Grants AD and Armor Penetration.",
	},
	{
		ID:          "stasis_enchant",
		Name:        "Stasis Enchant",
		Cost:        800,
		Category:    domain.CategoryEnchantment,
		Stats:       domain.StatBlock{},
		Tags:        tags(domain.TagInvulnerable, domain.TagActive),
		Description: "Active: Become invulnerable for 2.5s.",
	},
	{
		ID:          "quicksilver_enchant",
		Name:        "Quicksilver Enchant",
		Cost:        800,
		Category:    domain.CategoryEnchantment,
		Stats:       domain.StatBlock{},
		Tags:        tags(domain.TagCleanse, domain.TagActive),
		Description: "Active: Removes all crowd control.",
	},
	{
		ID:          "protobelt_enchant",
		Name:        "Protobelt Enchant",
		Cost:        800,
		Category:    domain.CategoryEnchantment,
		Stats:       domain.StatBlock{},
		Tags:        tags(domain.TagMobility, domain.TagActive),
		Description: "Active: Dash forward and fire missiles.",
	},
}
