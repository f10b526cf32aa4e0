package catalog

var defaultFile = File{
	DefaultEventType: DefaultEventType,
	EventTypes: []EventTypeInfo{
		{Key: "CHURCH_MEETING_VISTA_AL_MAR", Label: "Reunión de Iglesia | Loc. Vista al mar", TextColor: "text-blue-200", SoftBg: "bg-blue-500/40", BorderColor: "border-blue-500/50", IconName: "Waves"},
		{Key: "CHURCH_MEETING_CENTRO", Label: "Reunión de Iglesia | Loc. Centro", TextColor: "text-indigo-200", SoftBg: "bg-indigo-500/40", BorderColor: "border-indigo-500/50", IconName: "MapPin"},
		{Key: "GROUPS", Label: "Grupos", TextColor: "text-green-200", SoftBg: "bg-green-500/40", BorderColor: "border-green-500/50", IconName: "Users"},
		{Key: "GENERAL_GROUP_MEETING", Label: "Reunión general de grupos", TextColor: "text-emerald-200", SoftBg: "bg-emerald-500/40", BorderColor: "border-emerald-500/50", IconName: "Users"},
		{Key: "SPECIAL_EVENT", Label: "Evento especial", TextColor: "text-amber-200", SoftBg: "bg-amber-500/40", BorderColor: "border-amber-500/50", IconName: "Star"},
		{Key: "ONE_EIGHTY", Label: "180°", TextColor: "text-orange-200", SoftBg: "bg-orange-500/40", BorderColor: "border-orange-500/50", Icon: "/icons/Logo 180.svg"},
		{Key: "DISCIPLESHIP", Label: "Discipulado", TextColor: "text-purple-200", SoftBg: "bg-purple-500/40", BorderColor: "border-purple-500/50", IconName: "BookOpen"},
		{Key: "SMILES", Label: "Regalando sonrisas", TextColor: "text-pink-200", SoftBg: "bg-pink-500/40", BorderColor: "border-pink-500/50", IconName: "Smile"},
		{Key: "NO_MEETING", Label: "No hay reunión", TextColor: "text-slate-200", SoftBg: "bg-slate-600/50", BorderColor: "border-slate-500/50", IconName: "Ban"},
	},
	Supervisors: []string{
		"RMenjivar",
		"Hgaleas",
		"HFlower",
		"SBrito",
		"R.Canaca # 1",
		"R.Canaca # 2",
		"Emoreno",
		"NThompson",
		"JRodriguez",
	},
	StaffMembers: []string{
		"NZavala",
		"JOrtiz",
		"JRodriguez",
		"LOrtiz",
		"EBanegas",
		"GRivera",
		"HFlowers",
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultFile)
	if err != nil {
		// the built-in tables are static; failing here is a programming error
		panic(err)
	}
	return c
}
