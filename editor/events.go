package editor

import "github.com/iw2rmb/mdpad/buffer"

type ChangeEvent struct {
	Version   uint64
	Caret     int
	CaretPos  buffer.Pos
	Selection struct {
		Start, End int
		Active     bool
	}

	// v0: simplest payload; host can diff if needed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version:  b.Version(),
		Caret:    b.Caret(),
		CaretPos: b.CaretPos(),
		Text:     b.Text(),
	}
	if start, end, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Start = start
		ev.Selection.End = end
	}
	return ev
}
