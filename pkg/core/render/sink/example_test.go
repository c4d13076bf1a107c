package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/core/cloud/motion"
	"github.com/matzehuels/wordstorm/pkg/core/render/sink"
	"github.com/matzehuels/wordstorm/pkg/core/render/styles"
)

func ExampleRenderSVG() {
	l := cloud.Build([]cloud.Word{{Text: "cats", Weight: 10}, {Text: "dogs", Weight: 2}}, 400, 400)

	svg := sink.RenderSVG(l)

	fmt.Println("SVG starts with:", string(svg[:4]))
	fmt.Println("Words:", strings.Count(string(svg), `class="word"`))
	// Output:
	// SVG starts with: <svg
	// Words: 2
}

func ExampleRenderSVG_storm() {
	l := cloud.Build([]cloud.Word{{Text: "storm", Weight: 1}}, 400, 300)

	// Dark background, purple glow and a faint title behind the words
	svg := sink.RenderSVG(l,
		sink.WithStyle(styles.Storm{}),
		sink.WithTitle("Weather"),
	)

	fmt.Println("Has glow:", strings.Contains(string(svg), "storm-glow"))
	// Output:
	// Has glow: true
}

func ExampleRenderSVG_animated() {
	l := cloud.Build([]cloud.Word{{Text: "hello", Weight: 2}, {Text: "world", Weight: 1}}, 400, 300)

	// Entrance and idle float become CSS animations
	svg := sink.RenderSVG(l, sink.WithAnimation(motion.DefaultParams()))

	fmt.Println("Animated:", strings.Contains(string(svg), "@keyframes ws-enter"))
	// Output:
	// Animated: true
}
