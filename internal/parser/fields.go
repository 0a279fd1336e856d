package parser

// Canonical field registry. Patterns and synonyms come from CSG exports and
// OEM equipment lists seen across customer projects; different customers
// label the same column differently, which is why most fields carry several
// spellings.
var registry = []FieldDef{
	// Station / CSG
	{
		ID: "station.no", Label: "Station No",
		Kinds:    []SheetKind{SheetKindCSG, SheetKindRobots, SheetKindTooling, SheetKindAssignments},
		Patterns: []string{`^station\s*(no\.?|#|number)?$`, `^sta\.?$`},
		Synonyms: []string{"station", "station no", "station number", "sta", "station id"},
	},
	{
		ID: "station.name", Label: "Station Name",
		Kinds:    []SheetKind{SheetKindCSG},
		Patterns: []string{`^station\s*(name|desc(ription)?)$`},
		Synonyms: []string{"station name", "station description", "description"},
	},
	{
		ID: "station.area", Label: "Area",
		Kinds:    []SheetKind{SheetKindCSG},
		Patterns: []string{`^(line\s*)?(area|zone)$`},
		Synonyms: []string{"area", "zone", "line", "line area", "cell"},
	},
	{
		ID: "station.csgStatus", Label: "CSG Status",
		Kinds:    []SheetKind{SheetKindCSG},
		Patterns: []string{`^csg(\s*status)?$`},
		Synonyms: []string{"csg status", "csg", "sign off", "sign-off status"},
	},
	{
		ID: "station.pctComplete", Label: "% Complete",
		Kinds:    []SheetKind{SheetKindCSG},
		Patterns: []string{`^%?\s*complete$`, `^percent\s*complete$`},
		Synonyms: []string{"% complete", "percent complete", "progress", "completion"},
	},
	{
		ID: "station.simEngineer", Label: "Sim Engineer",
		Kinds:    []SheetKind{SheetKindCSG},
		Patterns: []string{`^sim(ulation)?\s*engineer$`},
		Synonyms: []string{"sim engineer", "simulation engineer", "engineer", "assigned to", "owner"},
	},

	// Robots
	{
		ID: "robot.id", Label: "Robot",
		Kinds:    []SheetKind{SheetKindRobots},
		Patterns: []string{`^robot\s*(no\.?|#|id)?$`, `^device\s*(name|id)$`},
		Synonyms: []string{"robot", "robot no", "robot id", "device name", "position"},
	},
	{
		ID: "robot.name", Label: "Robot Name",
		Kinds:    []SheetKind{SheetKindRobots},
		Patterns: []string{`^robot\s*name$`},
		Synonyms: []string{"robot name", "name"},
	},
	{
		ID: "robot.model", Label: "Model",
		Kinds:    []SheetKind{SheetKindRobots},
		Patterns: []string{`^(robot\s*)?(model|type)$`},
		Synonyms: []string{"model", "robot type", "robot model", "type"},
	},
	{
		ID: "robot.oem", Label: "OEM",
		Kinds:    []SheetKind{SheetKindRobots},
		Patterns: []string{`^oem$`, `^manufacturer$`},
		Synonyms: []string{"oem", "manufacturer", "make", "vendor"},
	},
	{
		ID: "robot.application", Label: "Application",
		Kinds:    []SheetKind{SheetKindRobots},
		Patterns: []string{`^application$`, `^process$`},
		Synonyms: []string{"application", "process", "function", "usage"},
	},
	{
		ID: "robot.simStatus", Label: "Sim Status",
		Kinds:    []SheetKind{SheetKindRobots},
		Patterns: []string{`^sim(ulation)?\s*status$`},
		Synonyms: []string{"sim status", "simulation status", "sim state"},
	},
	{
		ID: "robot.reachStatus", Label: "Reach Status",
		Kinds:    []SheetKind{SheetKindRobots},
		Patterns: []string{`^reach(\s*(status|study))?$`},
		Synonyms: []string{"reach", "reach status", "reach study", "reachability"},
	},
	{
		ID: "robot.dressPack", Label: "Dress Pack",
		Kinds:    []SheetKind{SheetKindRobots},
		Patterns: []string{`^dress\s*pack$`},
		Synonyms: []string{"dress pack", "dresspack", "dressing"},
	},
	{
		ID: "robot.simEngineer", Label: "Sim Engineer",
		Kinds:    []SheetKind{SheetKindRobots},
		Patterns: []string{`^sim(ulation)?\s*engineer$`},
		Synonyms: []string{"sim engineer", "simulation engineer", "engineer", "assigned to"},
	},
	{
		ID: "robot.pctComplete", Label: "% Complete",
		Kinds:    []SheetKind{SheetKindRobots},
		Patterns: []string{`^%?\s*complete$`, `^percent\s*complete$`},
		Synonyms: []string{"% complete", "percent complete", "progress"},
	},

	// Tooling
	{
		ID: "tooling.id", Label: "Tool ID",
		Kinds:    []SheetKind{SheetKindTooling},
		Patterns: []string{`^tool(ing)?\s*(no\.?|#|id|number)$`, `^gun\s*(no\.?|#|id)$`},
		Synonyms: []string{"tool id", "tool no", "tool number", "tooling id", "gun id", "gun no"},
	},
	{
		ID: "tooling.type", Label: "Tool Type",
		Kinds:    []SheetKind{SheetKindTooling},
		Patterns: []string{`^(tool(ing)?|gun)\s*type$`},
		Synonyms: []string{"tool type", "tooling type", "gun type", "equipment type"},
	},
	{
		ID: "tooling.gunForce", Label: "Gun Force",
		Kinds:    []SheetKind{SheetKindTooling},
		Patterns: []string{`^(gun\s*)?force(\s*\(?kn\)?)?$`},
		Synonyms: []string{"gun force", "force", "force kn", "clamp force"},
	},
	{
		ID: "tooling.status", Label: "Status",
		Kinds:    []SheetKind{SheetKindTooling},
		Patterns: []string{`^(tool(ing)?\s*)?status$`},
		Synonyms: []string{"status", "tool status", "design status"},
	},
	{
		ID: "tooling.pctComplete", Label: "% Complete",
		Kinds:    []SheetKind{SheetKindTooling},
		Patterns: []string{`^%?\s*complete$`},
		Synonyms: []string{"% complete", "percent complete", "progress"},
	},

	// Assignments
	{
		ID: "assignment.engineer", Label: "Engineer",
		Kinds:    []SheetKind{SheetKindAssignments},
		Patterns: []string{`^(sim(ulation)?\s*)?engineer$`},
		Synonyms: []string{"engineer", "sim engineer", "name", "resource"},
	},
	{
		ID: "assignment.phase", Label: "Phase",
		Kinds:    []SheetKind{SheetKindAssignments},
		Patterns: []string{`^(phase|milestone)$`},
		Synonyms: []string{"phase", "milestone", "activity", "scope"},
	},

	// Common
	{
		ID: "project.code", Label: "Project",
		Patterns: []string{`^(project|program)(\s*code)?$`},
		Synonyms: []string{"project", "program", "project code", "program code"},
	},
	{
		ID: "comment", Label: "Comments",
		Patterns: []string{`^(comments?|notes?|remarks?)$`},
		Synonyms: []string{"comment", "comments", "notes", "remark", "remarks"},
	},
}

// Fields returns the full registry.
func Fields() []FieldDef {
	out := make([]FieldDef, len(registry))
	copy(out, registry)
	return out
}

// FieldByID looks up a canonical field.
func FieldByID(id string) (FieldDef, bool) {
	for _, f := range registry {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDef{}, false
}

// FieldExists reports whether id names a canonical field. The override
// store uses this to drop overrides that survived a schema change.
func FieldExists(id string) bool {
	_, ok := FieldByID(id)
	return ok
}
