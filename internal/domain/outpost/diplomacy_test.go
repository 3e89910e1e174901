package outpost

import "testing"

func TestModifyRelationFlags(t *testing.T) {
	d := NewDiplomacy()

	if !d.ModifyRelation("meg", 35) {
		t.Fatalf("modify failed")
	}
	org := d.Get("meg")
	if org.Attitude != 85 || !org.IntelSharing || org.MilitarySupport {
		t.Fatalf("org = %+v", org)
	}
	if want := 1 + float64(org.Attitude)/100; org.TradeBonus != want {
		t.Fatalf("trade bonus = %v, want %v", org.TradeBonus, want)
	}

	d.ModifyRelation("meg", 100)
	if org.Attitude != 100 || !org.MilitarySupport {
		t.Fatalf("org after clamp = %+v", org)
	}
	if d.ModifyRelation("meg", 1) {
		t.Fatalf("saturated modify reported a change")
	}

	d.ModifyRelation("meg", -100)
	if org.Attitude != 0 || org.IntelSharing || org.MilitarySupport {
		t.Fatalf("org after drop = %+v", org)
	}
}

func TestRequestHelpRequiresEmbassy(t *testing.T) {
	g := newTestState(t, 5)
	res := g.RequestHelp("meg", "intel")
	if res.OK || res.Message != "embassy not built" {
		t.Fatalf("help without embassy = %+v", res)
	}
}

func TestRequestHelpGates(t *testing.T) {
	g := newTestState(t, 5)
	g.Defense.Built = append(g.Defense.Built, BuiltStructure{DefID: EmbassyStructureID, Name: "Embassy"})

	if res := g.RequestHelp("meg", "intel"); res.OK {
		t.Fatalf("intel help granted without intel sharing: %+v", res)
	}
	if res := g.RequestHelp("meg", "military"); res.OK {
		t.Fatalf("military help granted without military support: %+v", res)
	}
	if res := g.RequestHelp("meg", "snacks"); res.OK || res.Message != "unknown help kind" {
		t.Fatalf("unknown kind = %+v", res)
	}
	if res := g.RequestHelp("nobody", "intel"); res.OK || res.Message != "unknown organization" {
		t.Fatalf("unknown org = %+v", res)
	}
}

func TestRequestHelpAtZeroAttitudeAlwaysFails(t *testing.T) {
	g := newTestState(t, 5)
	g.Defense.Built = append(g.Defense.Built, BuiltStructure{DefID: EmbassyStructureID, Name: "Embassy"})

	org := g.Diplomacy.Get("meg")
	org.Attitude = 0
	org.IntelSharing = true
	moraleBefore := g.Stats.Morale
	prestigeBefore := g.Stats.Prestige

	res := g.RequestHelp("meg", "intel")
	if res.OK {
		t.Fatalf("help granted at attitude 0")
	}
	if org.Attitude != 0 {
		t.Fatalf("attitude = %d, want 0 (clamped)", org.Attitude)
	}
	if g.Stats.Morale != moraleBefore-HelpFailureMoraleCost {
		t.Fatalf("morale = %d, want %d", g.Stats.Morale, moraleBefore-HelpFailureMoraleCost)
	}
	if g.Stats.Prestige != prestigeBefore-HelpFailurePrestigeCost {
		t.Fatalf("prestige = %d, want %d", g.Stats.Prestige, prestigeBefore-HelpFailurePrestigeCost)
	}
}

func TestRequestHelpGrantCostsGoodwill(t *testing.T) {
	g := newTestState(t, 5)
	g.Defense.Built = append(g.Defense.Built, BuiltStructure{DefID: EmbassyStructureID, Name: "Embassy"})

	org := g.Diplomacy.Get("meg")
	org.Attitude = 100
	org.IntelSharing = true

	res := g.RequestHelp("meg", "intel")
	if !res.OK {
		t.Fatalf("help at attitude 100 refused: %+v", res)
	}
	if org.Attitude != 100-HelpSuccessRelationCost {
		t.Fatalf("attitude = %d, want %d", org.Attitude, 100-HelpSuccessRelationCost)
	}
}
