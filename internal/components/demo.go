package components

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexusai/website/internal/demo"
)

// replayCue is the shape demo.js reads when it replays the script without a stream.
type replayCue struct {
	DelayMs int64  `json:"delayMs"`
	Sender  string `json:"sender"`
	Text    string `json:"text"`
}

type replayScript struct {
	Opening demo.Message `json:"opening"`
	Cues    []replayCue  `json:"cues"`
}

// ScriptJSON encodes a script for client-side replay. json.Marshal escapes
// '<' and '>', so the result is safe inside a script element.
func ScriptJSON(s demo.Script) (string, error) {
	out := replayScript{Opening: s.Opening, Cues: make([]replayCue, len(s.Cues))}
	for i, c := range s.Cues {
		out.Cues[i] = replayCue{
			DelayMs: c.Delay.Milliseconds(),
			Sender:  string(c.Message.Sender),
			Text:    c.Message.Text,
		}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LiveDemoConsole renders the chat window with the transcript as it is at
// mount. streamURL, when set, is where demo.js subscribes for the rest of
// the conversation; without it the script is replayed in the browser.
func LiveDemoConsole(script demo.Script, streamURL string) g.Node {
	transcript := demo.NewTranscript(script)
	scriptJSON, err := ScriptJSON(script)
	if err != nil {
		scriptJSON = "null"
	}

	return Div(
		Class("relative bg-[#0a0f14]/80 border border-slate-700 rounded-xl overflow-hidden aspect-[4/3] md:aspect-video shadow-2xl backdrop-blur-md flex flex-col pt-4"),
		g.Attr("data-demo-console", ""),
		g.If(streamURL != "", g.Attr("data-stream", streamURL)),

		Div(
			Class("absolute top-0 left-0 w-full h-10 bg-slate-900 border-b border-slate-800 flex items-center px-4 gap-2 z-10"),
			Div(
				Class("flex gap-1.5"),
				Div(Class("w-3 h-3 rounded-full bg-red-500")),
				Div(Class("w-3 h-3 rounded-full bg-yellow-500")),
				Div(Class("w-3 h-3 rounded-full bg-green-500")),
			),
			Div(
				Class("flex bg-slate-800/50 rounded-md px-3 py-1 ml-4 items-center gap-2"),
				Icon("lucide--bot size-3.5 text-primary", ""),
				Span(Class("text-xs text-slate-400 font-mono"), g.Text("Live Demo - Auto Booking")),
			),
		),

		Div(
			Class("flex-1 p-6 mt-10 overflow-hidden flex flex-col justify-end"),
			Div(
				Class("flex flex-col gap-4 relative w-full h-full justify-end pb-2"),
				Div(
					Class("flex flex-col gap-4"),
					g.Attr("data-demo-transcript", ""),
					g.Attr("aria-live", "polite"),
					g.Group(g.Map(transcript.Messages(), ChatBubble)),
				),
				TypingIndicator(transcript.Typing()),
			),
		),

		Script(Type("application/json"), g.Attr("data-demo-script", ""), g.Raw(scriptJSON)),
	)
}

// ChatBubble renders one message, aligned by sender.
func ChatBubble(m demo.Message) g.Node {
	visitor := m.Sender == demo.SenderVisitor

	justify := "justify-start"
	bubble := "bg-slate-800 text-slate-200 border border-slate-700/50 rounded-bl-sm"
	if visitor {
		justify = "justify-end"
		bubble = "bg-primary text-white rounded-br-sm"
	}

	return Div(
		Class("flex w-full chat-enter "+justify),
		g.Attr("data-sender", string(m.Sender)),
		Div(
			Class("flex items-end gap-2 max-w-[80%]"),
			g.If(!visitor, Div(
				Class("w-8 h-8 rounded-full bg-primary/20 border border-primary/50 flex items-center justify-center shrink-0 mb-1"),
				Icon("lucide--bot size-4 text-primary", ""),
			)),
			Div(
				Class("px-4 py-3 rounded-2xl text-sm leading-relaxed "+bubble),
				g.Text(m.Text),
			),
			g.If(visitor, Div(
				Class("w-8 h-8 rounded-full bg-slate-700 border border-slate-600 flex items-center justify-center shrink-0 mb-1"),
				Icon("lucide--user size-4 text-slate-300", ""),
			)),
		),
	)
}

// TypingIndicator is the three bouncing dots on the agent's side.
func TypingIndicator(visible bool) g.Node {
	return Div(
		Class("flex items-center gap-1 text-slate-500 mt-2 self-start ml-12"),
		g.Attr("data-demo-typing", ""),
		g.If(!visible, g.Attr("hidden", "")),
		Div(Class("w-1.5 h-1.5 bg-slate-500 rounded-full animate-bounce")),
		Div(Class("w-1.5 h-1.5 bg-slate-500 rounded-full animate-bounce"), Style("animation-delay: 0.2s")),
		Div(Class("w-1.5 h-1.5 bg-slate-500 rounded-full animate-bounce"), Style("animation-delay: 0.4s")),
	)
}
