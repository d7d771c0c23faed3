package catalog

import "github.com/dom/rift-companion/internal/domain"

// champions is the roster in catalog order. Never hand this slice out directly.
var champions = []domain.Champion{
	champion("aatrox", "Aatrox", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelMedium, domain.LevelMedium),
	champion("ahri", "Ahri", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelMedium, domain.LevelHigh),
	champion("akali", "Akali", domain.RoleMid, domain.DamageMagical, domain.ArchetypeAssassin, domain.CurveMid, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("akshan", "Akshan", domain.RoleMid, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveEarly, domain.RangeRanged, domain.LevelLow, domain.LevelHigh),
	champion("alistar", "Alistar", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeTank, domain.CurveLinear, domain.RangeMelee, domain.LevelHigh, domain.LevelMedium),
	champion("ambessa", "Ambessa", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("amumu", "Amumu", domain.RoleJungle, domain.DamageMagical, domain.ArchetypeTank, domain.CurveLate, domain.RangeMelee, domain.LevelHigh, domain.LevelMedium),
	champion("annie", "Annie", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelHigh, domain.LevelLow),
	champion("ashe", "Ashe", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveLinear, domain.RangeRanged, domain.LevelHigh, domain.LevelLow),
	champion("aurelion_sol", "Aurelion Sol", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveLate, domain.RangeRanged, domain.LevelMedium, domain.LevelMedium),
	champion("bard", "Bard", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeSupport, domain.CurveLate, domain.RangeRanged, domain.LevelHigh, domain.LevelHigh),
	champion("blitzcrank", "Blitzcrank", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeTank, domain.CurveEarly, domain.RangeMelee, domain.LevelHigh, domain.LevelMedium),
	champion("brand", "Brand", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelLow),
	champion("braum", "Braum", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeTank, domain.CurveLinear, domain.RangeMelee, domain.LevelHigh, domain.LevelLow),
	champion("caitlyn", "Caitlyn", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveEarly, domain.RangeRanged, domain.LevelMedium, domain.LevelMedium),
	champion("camille", "Camille", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveLate, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("corki", "Corki", domain.RoleMid, domain.DamageMixed, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelMedium),
	champion("darius", "Darius", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveEarly, domain.RangeMelee, domain.LevelMedium, domain.LevelLow),
	champion("diana", "Diana", domain.RoleMid, domain.DamageMagical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("dr_mundo", "Dr. Mundo", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeTank, domain.CurveLate, domain.RangeMelee, domain.LevelLow, domain.LevelLow),
	champion("draven", "Draven", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveEarly, domain.RangeRanged, domain.LevelLow, domain.LevelMedium),
	champion("ekko", "Ekko", domain.RoleJungle, domain.DamageMagical, domain.ArchetypeAssassin, domain.CurveMid, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("evelynn", "Evelynn", domain.RoleJungle, domain.DamageMagical, domain.ArchetypeAssassin, domain.CurveMid, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("ezreal", "Ezreal", domain.RoleADC, domain.DamageMixed, domain.ArchetypeMarksman, domain.CurveMid, domain.RangeRanged, domain.LevelLow, domain.LevelHigh),
	champion("fiddlesticks", "Fiddlesticks", domain.RoleJungle, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelHigh, domain.LevelLow),
	champion("fiora", "Fiora", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveLate, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("fizz", "Fizz", domain.RoleMid, domain.DamageMagical, domain.ArchetypeAssassin, domain.CurveMid, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("galio", "Galio", domain.RoleMid, domain.DamageMagical, domain.ArchetypeTank, domain.CurveMid, domain.RangeMelee, domain.LevelHigh, domain.LevelMedium),
	champion("garen", "Garen", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveLinear, domain.RangeMelee, domain.LevelLow, domain.LevelLow),
	champion("gnar", "Gnar", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMixed, domain.LevelHigh, domain.LevelHigh),
	champion("gragas", "Gragas", domain.RoleJungle, domain.DamageMagical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelHigh, domain.LevelMedium),
	champion("graves", "Graves", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveMid, domain.RangeRanged, domain.LevelLow, domain.LevelMedium),
	champion("gwen", "Gwen", domain.RoleTop, domain.DamageMagical, domain.ArchetypeFighter, domain.CurveLate, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("hecarim", "Hecarim", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("irelia", "Irelia", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("janna", "Janna", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeSupport, domain.CurveLinear, domain.RangeRanged, domain.LevelHigh, domain.LevelHigh),
	champion("jarvan_iv", "Jarvan IV", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeTank, domain.CurveEarly, domain.RangeMelee, domain.LevelHigh, domain.LevelHigh),
	champion("jax", "Jax", domain.RoleTop, domain.DamageMixed, domain.ArchetypeFighter, domain.CurveLate, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("jayce", "Jayce", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveEarly, domain.RangeMixed, domain.LevelLow, domain.LevelMedium),
	champion("jhin", "Jhin", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveMid, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("jinx", "Jinx", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelLow),
	champion("kaisa", "Kai'Sa", domain.RoleADC, domain.DamageMixed, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelHigh),
	champion("kalista", "Kalista", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveEarly, domain.RangeRanged, domain.LevelLow, domain.LevelHigh),
	champion("karma", "Karma", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeMage, domain.CurveEarly, domain.RangeRanged, domain.LevelMedium, domain.LevelMedium),
	champion("kassadin", "Kassadin", domain.RoleMid, domain.DamageMagical, domain.ArchetypeAssassin, domain.CurveLate, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("katarina", "Katarina", domain.RoleMid, domain.DamageMagical, domain.ArchetypeAssassin, domain.CurveMid, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("kayle", "Kayle", domain.RoleTop, domain.DamageMixed, domain.ArchetypeFighter, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelMedium),
	champion("kayn", "Kayn", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeAssassin, domain.CurveMid, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("kennen", "Kennen", domain.RoleTop, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelHigh, domain.LevelHigh),
	champion("khazix", "Kha'Zix", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeAssassin, domain.CurveMid, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("kindred", "Kindred", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelHigh),
	champion("leesin", "Lee Sin", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveEarly, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("leona", "Leona", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeTank, domain.CurveLinear, domain.RangeMelee, domain.LevelHigh, domain.LevelMedium),
	champion("lillia", "Lillia", domain.RoleJungle, domain.DamageMagical, domain.ArchetypeFighter, domain.CurveLate, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("lissandra", "Lissandra", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelHigh, domain.LevelHigh),
	champion("lucian", "Lucian", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveEarly, domain.RangeRanged, domain.LevelLow, domain.LevelHigh),
	champion("lulu", "Lulu", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeSupport, domain.CurveLinear, domain.RangeRanged, domain.LevelHigh, domain.LevelLow),
	champion("lux", "Lux", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelHigh, domain.LevelLow),
	champion("malphite", "Malphite", domain.RoleTop, domain.DamageMagical, domain.ArchetypeTank, domain.CurveLinear, domain.RangeMelee, domain.LevelHigh, domain.LevelLow),
	champion("maokai", "Maokai", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeTank, domain.CurveLinear, domain.RangeMelee, domain.LevelHigh, domain.LevelLow),
	champion("masteryi", "Master Yi", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeAssassin, domain.CurveLate, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("milio", "Milio", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeSupport, domain.CurveLinear, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("miss_fortune", "Miss Fortune", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveMid, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("mordekaiser", "Mordekaiser", domain.RoleTop, domain.DamageMagical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelMedium, domain.LevelLow),
	champion("morgana", "Morgana", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelHigh, domain.LevelLow),
	champion("nami", "Nami", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeSupport, domain.CurveLinear, domain.RangeRanged, domain.LevelHigh, domain.LevelLow),
	champion("nasus", "Nasus", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveLate, domain.RangeMelee, domain.LevelMedium, domain.LevelLow),
	champion("nautilus", "Nautilus", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeTank, domain.CurveLinear, domain.RangeMelee, domain.LevelHigh, domain.LevelLow),
	champion("nilah", "Nilah", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeAssassin, domain.CurveLate, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("norra", "Norra", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelMedium, domain.LevelMedium),
	champion("nunu", "Nunu & Willump", domain.RoleJungle, domain.DamageMagical, domain.ArchetypeTank, domain.CurveMid, domain.RangeMelee, domain.LevelHigh, domain.LevelHigh),
	champion("olaf", "Olaf", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveEarly, domain.RangeMelee, domain.LevelLow, domain.LevelMedium),
	champion("orianna", "Orianna", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveLate, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("ornn", "Ornn", domain.RoleTop, domain.DamageMixed, domain.ArchetypeTank, domain.CurveLate, domain.RangeMelee, domain.LevelHigh, domain.LevelMedium),
	champion("pantheon", "Pantheon", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveEarly, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("pyke", "Pyke", domain.RoleSupport, domain.DamagePhysical, domain.ArchetypeAssassin, domain.CurveEarly, domain.RangeMelee, domain.LevelHigh, domain.LevelHigh),
	champion("rakan", "Rakan", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeSupport, domain.CurveMid, domain.RangeMelee, domain.LevelHigh, domain.LevelHigh),
	champion("rammus", "Rammus", domain.RoleJungle, domain.DamageMixed, domain.ArchetypeTank, domain.CurveMid, domain.RangeMelee, domain.LevelHigh, domain.LevelHigh),
	champion("renekton", "Renekton", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveEarly, domain.RangeMelee, domain.LevelMedium, domain.LevelMedium),
	champion("rengar", "Rengar", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeAssassin, domain.CurveMid, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("riven", "Riven", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("ryze", "Ryze", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelMedium),
	champion("samira", "Samira", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveMid, domain.RangeRanged, domain.LevelLow, domain.LevelHigh),
	champion("senna", "Senna", domain.RoleSupport, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("seraphine", "Seraphine", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeMage, domain.CurveLate, domain.RangeRanged, domain.LevelHigh, domain.LevelLow),
	champion("sett", "Sett", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelMedium, domain.LevelMedium),
	champion("shen", "Shen", domain.RoleTop, domain.DamageMixed, domain.ArchetypeTank, domain.CurveLinear, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("shyvana", "Shyvana", domain.RoleJungle, domain.DamageMixed, domain.ArchetypeFighter, domain.CurveLate, domain.RangeMelee, domain.LevelLow, domain.LevelMedium),
	champion("singed", "Singed", domain.RoleTop, domain.DamageMagical, domain.ArchetypeTank, domain.CurveLate, domain.RangeMelee, domain.LevelMedium, domain.LevelMedium),
	champion("sion", "Sion", domain.RoleTop, domain.DamageMixed, domain.ArchetypeTank, domain.CurveLate, domain.RangeMelee, domain.LevelMedium, domain.LevelLow),
	champion("sivir", "Sivir", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelMedium),
	champion("smolder", "Smolder", domain.RoleADC, domain.DamageMixed, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelMedium),
	champion("sona", "Sona", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeSupport, domain.CurveLate, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("soraka", "Soraka", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeSupport, domain.CurveLinear, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("swain", "Swain", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("syndra", "Syndra", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveLate, domain.RangeRanged, domain.LevelHigh, domain.LevelLow),
	champion("talon", "Talon", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeAssassin, domain.CurveEarly, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("teemo", "Teemo", domain.RoleTop, domain.DamageMagical, domain.ArchetypeMarksman, domain.CurveMid, domain.RangeRanged, domain.LevelLow, domain.LevelMedium),
	champion("thresh", "Thresh", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeSupport, domain.CurveLinear, domain.RangeMelee, domain.LevelHigh, domain.LevelMedium),
	champion("tristana", "Tristana", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelHigh),
	champion("tryndamere", "Tryndamere", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveLate, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("twisted_fate", "Twisted Fate", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelHigh, domain.LevelHigh),
	champion("twitch", "Twitch", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelMedium),
	champion("urgot", "Urgot", domain.RoleTop, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("varus", "Varus", domain.RoleADC, domain.DamageMixed, domain.ArchetypeMarksman, domain.CurveMid, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("vayne", "Vayne", domain.RoleADC, domain.DamageTrue, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelMedium, domain.LevelHigh),
	champion("veigar", "Veigar", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveLate, domain.RangeRanged, domain.LevelHigh, domain.LevelLow),
	champion("vex", "Vex", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelHigh, domain.LevelMedium),
	champion("vi", "Vi", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelHigh, domain.LevelHigh),
	champion("viego", "Viego", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveLate, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("viktor", "Viktor", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveLate, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("vladimir", "Vladimir", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelMedium),
	champion("volibear", "Volibear", domain.RoleJungle, domain.DamageMixed, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelMedium, domain.LevelMedium),
	champion("warwick", "Warwick", domain.RoleJungle, domain.DamageMixed, domain.ArchetypeFighter, domain.CurveEarly, domain.RangeMelee, domain.LevelMedium, domain.LevelMedium),
	champion("wukong", "Wukong", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveMid, domain.RangeMelee, domain.LevelHigh, domain.LevelHigh),
	champion("xayah", "Xayah", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelMedium, domain.LevelMedium),
	champion("xin_zhao", "Xin Zhao", domain.RoleJungle, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveEarly, domain.RangeMelee, domain.LevelHigh, domain.LevelHigh),
	champion("yasuo", "Yasuo", domain.RoleMid, domain.DamagePhysical, domain.ArchetypeFighter, domain.CurveLate, domain.RangeMelee, domain.LevelMedium, domain.LevelHigh),
	champion("yone", "Yone", domain.RoleMid, domain.DamageMixed, domain.ArchetypeFighter, domain.CurveLate, domain.RangeMelee, domain.LevelHigh, domain.LevelHigh),
	champion("yuumi", "Yuumi", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeSupport, domain.CurveLate, domain.RangeRanged, domain.LevelMedium, domain.LevelHigh),
	champion("zed", "Zed", domain.RoleMid, domain.DamagePhysical, domain.ArchetypeAssassin, domain.CurveMid, domain.RangeMelee, domain.LevelLow, domain.LevelHigh),
	champion("zeri", "Zeri", domain.RoleADC, domain.DamagePhysical, domain.ArchetypeMarksman, domain.CurveLate, domain.RangeRanged, domain.LevelLow, domain.LevelHigh),
	champion("ziggs", "Ziggs", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelMedium, domain.LevelLow),
	champion("zoe", "Zoe", domain.RoleMid, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelHigh, domain.LevelHigh),
	champion("zyra", "Zyra", domain.RoleSupport, domain.DamageMagical, domain.ArchetypeMage, domain.CurveMid, domain.RangeRanged, domain.LevelHigh, domain.LevelLow),
}

func champion(id, name string, role domain.Role, dmg domain.DamageType, arch domain.Archetype, curve domain.PowerCurve, rng domain.Range, cc, mobility domain.Level) domain.Champion {
	return domain.Champion{
		ID:         id,
		Name:       name,
		Role:       role,
		DamageType: dmg,
		Archetype:  arch,
		PowerCurve: curve,
		Range:      rng,
		CCDensity:  cc,
		Mobility:   mobility,
	}
}
