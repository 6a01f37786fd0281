package core

import (
	"context"
	"strings"

	"github.com/ontslagwijzer/ontslagwijzer/pkg/agent/tool"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
)

// checkDiscriminationTool classifies a described situation against the
// protected grounds of Dutch equal treatment law and returns guidance text
// plus a fixed checklist of next actions. It persists nothing; the
// classification is advisory, never a legal determination.
type checkDiscriminationTool struct{}

func (t *checkDiscriminationTool) Spec() tool.Spec {
	return tool.Spec{
		Name:        "check_discrimination",
		Description: "Beoordeel of een beschreven situatie kan wijzen op discriminatie bij ontslag, op basis van de beschermde gronden uit de gelijkebehandelingswetgeving. Gebruik dit wanneer de gebruiker een mogelijk discriminerende situatie beschrijft.",
		Parameters: map[string]*tool.Parameter{
			"situation": {
				Type:        tool.TypeString,
				Description: "De situatie zoals de gebruiker die beschrijft",
				Required:    true,
			},
			"characteristic": {
				Type:        tool.TypeString,
				Description: "De beschermde grond waar de situatie op lijkt te zien",
				Enum:        characteristicValues(),
			},
		},
	}
}

var characteristicGuidance = map[types.Characteristic]string{
	types.CharacteristicRace:              "Onderscheid op grond van ras of afkomst is verboden onder de Algemene wet gelijke behandeling (AWGB). Ontslag waarbij afkomst, huidskleur of etniciteit een rol speelt is vrijwel nooit toegestaan.",
	types.CharacteristicGender:            "Onderscheid op grond van geslacht is verboden onder de AWGB en artikel 7:646 BW. Dit omvat ook genderidentiteit en genderexpressie.",
	types.CharacteristicAge:               "Leeftijdsonderscheid bij ontslag is verboden onder de Wet gelijke behandeling op grond van leeftijd (WGBL), tenzij er een objectieve rechtvaardiging is.",
	types.CharacteristicDisability:        "Onderscheid op grond van handicap of chronische ziekte is verboden onder de WGBH/CZ. De werkgever moet bovendien doeltreffende aanpassingen onderzoeken voordat ontslag in beeld komt.",
	types.CharacteristicReligion:          "Onderscheid op grond van godsdienst of levensovertuiging is verboden onder de AWGB, ook bij indirecte maatregelen zoals kledingvoorschriften.",
	types.CharacteristicSexualOrientation: "Onderscheid op grond van seksuele gerichtheid is verboden onder de AWGB.",
	types.CharacteristicPregnancy:         "Ontslag wegens zwangerschap of ouderschapsverlof is direct onderscheid op grond van geslacht en daarnaast geldt een opzegverbod tijdens zwangerschap (artikel 7:670 BW).",
	types.CharacteristicNationality:       "Onderscheid op grond van nationaliteit is verboden onder de AWGB, behalve waar de wet zelf nationaliteitseisen stelt.",
	types.CharacteristicContractType:      "Onderscheid tussen vaste en tijdelijke werknemers of tussen voltijd en deeltijd is verboden onder artikel 7:648 en 7:649 BW, tenzij objectief gerechtvaardigd.",
	types.CharacteristicMultiple:          "De situatie kan op meerdere beschermde gronden zien. De gelijkebehandelingswetgeving verbiedt onderscheid op onder meer ras, geslacht, leeftijd, handicap, godsdienst, seksuele gerichtheid en nationaliteit; ook combinaties daarvan zijn verboden.",
}

// discriminationChecklist is the fixed set of next actions, independent of
// the recognized ground.
var discriminationChecklist = []string{
	"Documenteer wat er is gezegd en gedaan, met datum en betrokkenen, op je tijdlijn.",
	"Verzamel bewijs: e-mails, beoordelingen, getuigen, gespreksverslagen.",
	"Vraag de werkgever om een schriftelijke ontslagreden.",
	"Dien binnen zes maanden een klacht in bij het College voor de Rechten van de Mens.",
	"Overleg met een jurist of het Juridisch Loket over je positie.",
}

func (t *checkDiscriminationTool) Run(ctx context.Context, args map[string]any) (*tool.Result, error) {
	characteristic := types.Characteristic(stringArg(args, "characteristic")).Normalize()

	tool.Update(ctx, "Situatie toetsen aan beschermde gronden...")

	explanation := characteristicGuidance[characteristic]

	return &tool.Result{
		Action:  "discrimination_checked",
		Message: explanation + " Volgende stappen: " + strings.Join(discriminationChecklist, " "),
		Data: map[string]any{
			"characteristic": characteristic.String(),
			"explanation":    explanation,
			"checklist":      discriminationChecklist,
		},
	}, nil
}

func characteristicValues() []string {
	all := types.AllCharacteristics()
	values := make([]string, len(all))
	for i, c := range all {
		values[i] = c.String()
	}
	return values
}
