package app

// WelcomeText is the document shown when mdpad starts without a file and
// nothing has been autosaved yet.
const WelcomeText = "# Welcome to mdpad\n" +
	"\n" +
	"Start typing your markdown here...\n" +
	"\n" +
	"## Features\n" +
	"\n" +
	"- **Live Preview**: the right pane renders as you type\n" +
	"- **Syntax Highlighting**: fenced code blocks are highlighted\n" +
	"- **Resizable Panes**: alt+= and alt+- move the divider\n" +
	"- **Auto-save**: your work is saved in the background\n" +
	"\n" +
	"```go\n" +
	"greeting := \"Hello, World!\"\n" +
	"fmt.Println(greeting)\n" +
	"```\n" +
	"\n" +
	"> This is a blockquote example\n" +
	"\n" +
	"## Learn More\n" +
	"\n" +
	"Visit [Markdown Guide](https://www.markdownguide.org/) for comprehensive documentation.\n" +
	"\n" +
	"Press f1 for key bindings. Enjoy writing!"
