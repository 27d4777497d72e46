package monsters

import (
	"fmt"
	"strings"
)

// TutorialURL is shown to players who have not killed anything yet.
const TutorialURL = "https://example.com"

// storyBeats are shown while the score is below the given bound.
var storyBeats = []struct {
	below int
	text  string
}{
	{1, "First game? Watch the tutorial: " + TutorialURL},
	{20, "Villagers start to realize you fight for them."},
	{30, "Clouds fly by as the monsters' blood drains the ground."},
	{40, "Scarecrows move and creak in the wind."},
	{50, "The sun shifts as the massacre continues for hours."},
	{60, "Water swirling dreamily in a nearby river starts to get a red, bloody shade."},
	{70, "Hours pass and the sun starts to set, causing a group of old oaks to cast long shadows on the battlefield."},
	{80, "A beautiful red fills the sky, matching the red of the dead monsters' corpuses."},
	{90, "The moon shines on the field. The sound of crickets, owl and wind is only interrupted by the creaks of dying monsters."},
	{100, "The last villagers who stayed awake out of fear begin to fall asleep dreamily."},
}

const lateGame = "Hundreds of monsters have been killed by now. But the fight goes on."

// Narration returns the line shown above the yard. After a rejected input it
// lists the valid keys instead of advancing the story.
func Narration(score int, invalid bool) string {
	if invalid {
		return InvalidActionMessage()
	}
	for _, beat := range storyBeats {
		if score < beat.below {
			return beat.text
		}
	}
	return lateGame
}

// InvalidActionMessage tells the player which keys are accepted.
func InvalidActionMessage() string {
	keys := ValidKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	last := len(names) - 1
	return fmt.Sprintf("That is not a valid action. Enter %s, or %s!",
		strings.Join(names[:last], ", "), names[last])
}

const bloodyFight = "It was a short, brutal, bloody fight as the monsters enter the village."

// GameOverLines returns the summary shown when a monster reached the village.
func GameOverLines(score int) []string {
	if score > 0 {
		return []string{
			bloodyFight,
			fmt.Sprintf("At least you killed %d of them before they could eat the villagers.", score),
		}
	}
	return []string{
		bloodyFight,
		"You couldn't kill one of them before they reached the village.",
	}
}

// FarewellLines returns the text shown when the player abandons the village.
func FarewellLines(score int) []string {
	mourn := "They "
	if score > 0 {
		mourn = fmt.Sprintf("They mourn about the %d of them who you killed, but they ", score)
	}
	return []string{
		bloodyFight,
		mourn + "thank you for leaving the yummy villagers unprotected.",
	}
}

// GameOverBanner is the block-letter title of the game over screen.
var GameOverBanner = []string{
	` ██████╗  █████╗ ███╗   ███╗███████╗     ██████╗ ██╗   ██╗███████╗██████╗`,
	`██╔════╝ ██╔══██╗████╗ ████║██╔════╝    ██╔═══██╗██║   ██║██╔════╝██╔══██╗`,
	`██║  ███╗███████║██╔████╔██║█████╗      ██║   ██║██║   ██║█████╗  ██████╔╝`,
	`██║   ██║██╔══██║██║╚██╔╝██║██╔══╝      ██║   ██║╚██╗ ██╔╝██╔══╝  ██╔══██╗`,
	`╚██████╔╝██║  ██║██║ ╚═╝ ██║███████╗    ╚██████╔╝ ╚████╔╝ ███████╗██║  ██║`,
	` ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝     ╚═════╝   ╚═══╝  ╚══════╝╚═╝  ╚═╝`,
}
