package game

// ActionType identifies what a Move does. Player actions come first, then
// the free moves and phase transitions.
type ActionType int

const (
	DriveAction ActionType = iota
	DirectFlightAction
	CharterFlightAction
	ShuttleFlightAction
	BuildResearchStationAction
	TreatDiseaseAction
	ShareKnowledgeAction
	DiscoverCureAction
	SkipAction

	EndActionsAction
	DiscardAction
	RemoveResearchStationAction
	DrawPlayerCardAction
	DrawInfectionCardAction
	EndInfectionAction
	NextTurnAction
)

var actionNames = map[ActionType]string{
	DriveAction:                 "drive",
	DirectFlightAction:          "direct_flight",
	CharterFlightAction:         "charter_flight",
	ShuttleFlightAction:         "shuttle_flight",
	BuildResearchStationAction:  "build_research_station",
	TreatDiseaseAction:          "treat_disease",
	ShareKnowledgeAction:        "share_knowledge",
	DiscoverCureAction:          "discover_cure",
	SkipAction:                  "skip",
	EndActionsAction:            "end_actions",
	DiscardAction:               "discard",
	RemoveResearchStationAction: "remove_research_station",
	DrawPlayerCardAction:        "draw_player_card",
	DrawInfectionCardAction:     "draw_infection_card",
	EndInfectionAction:          "end_infection",
	NextTurnAction:              "next_turn",
}

func (a ActionType) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// IsAction reports whether the move costs one of the turn's actions.
func (a ActionType) IsAction() bool {
	return a <= SkipAction
}
