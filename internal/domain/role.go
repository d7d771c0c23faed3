package domain

import (
	"fmt"
	"strings"
)

// Role is the lane a champion is played in. Values keep the PC names; the
// Wild Rift lane names are accepted as aliases.
type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleADC     Role = "adc"
	RoleSupport Role = "support"
)

var laneNames = map[Role]string{
	RoleTop:     "Baron Lane",
	RoleJungle:  "Jungle",
	RoleMid:     "Mid Lane",
	RoleADC:     "Dragon Lane",
	RoleSupport: "Support",
}

var roleAliases = map[string]Role{
	"baron":  RoleTop,
	"solo":   RoleTop,
	"jg":     RoleJungle,
	"middle": RoleMid,
	"dragon": RoleADC,
	"duo":    RoleADC,
	"sup":    RoleSupport,
}

func (r Role) IsValid() bool {
	_, ok := laneNames[r]
	return ok
}

// DisplayName returns the in-game lane name
func (r Role) DisplayName() string {
	if name, ok := laneNames[r]; ok {
		return name
	}
	return string(r)
}

// ParseRole accepts a role value or a lane alias, case-insensitively
func ParseRole(s string) (Role, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if r := Role(key); r.IsValid() {
		return r, nil
	}
	if r, ok := roleAliases[key]; ok {
		return r, nil
	}
	return "", fmt.Errorf("unknown lane %q", s)
}
