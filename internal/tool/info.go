package tool

const sourceURL = "https://github.com/figo711/timemann"

// logo is the About banner, drawn as a code block so it keeps its spacing.
const logo = " _   _\n" +
	"| |_(_)_ __ ___   ___ _ __ ___   __ _ _ __  _ __\n" +
	"| __| | '_ ` _ \\ / _ \\ '_ ` _ \\ / _` | '_ \\| '_ \\\n" +
	"| |_| | | | | | |  __/ | | | | | (_| | | | | | | |\n" +
	" \\__|_|_| |_| |_|\\___|_| |_| |_|\\__,_|_| |_|_| |_|\n"

// infoMarkdown is shown on the Info tab.
const infoMarkdown = "```\n" + logo + "```\n\n" +
	"A stopwatch and a countdown timer for the terminal.\n\n" +
	"- **Stopwatch**: `enter` starts and pauses, `c` clears when stopped.\n" +
	"- **Countdown**: type digits to set the time (seconds first), " +
	"`enter` starts and pauses, `e` edits, `c` clears.\n\n" +
	"Source code: " + sourceURL + "\n"

// Info is a display-only tool. It has no state and ignores every message.
type Info struct{}

func (Info) view() View {
	return View{Markdown: infoMarkdown}
}
