package demo

import (
	"github.com/AnatoleLucet/blaze"
	"github.com/AnatoleLucet/blaze/tags"
)

type Board [9]string

var lines = [][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the player owning a full line, "" if there is none.
func (b Board) Winner() string {
	for _, l := range lines {
		if p := b[l[0]]; p != "" && p == b[l[1]] && p == b[l[2]] {
			return p
		}
	}
	return ""
}

func (b Board) Full() bool {
	for _, sq := range b {
		if sq == "" {
			return false
		}
	}
	return true
}

func TicTacToe(c *blaze.Ctx, _ blaze.Props) blaze.Node {
	player, setPlayer := blaze.UseState(c, "X")
	board, setBoard := blaze.UseState(c, Board{})
	winner, setWinner := blaze.UseState(c, "")

	play := func(i int) {
		if board[i] != "" || winner != "" {
			return
		}

		next := board
		next[i] = player
		setBoard.Set(next)
		setPlayer.Update(func(p string) string {
			if p == "X" {
				return "O"
			}
			return "X"
		})

		if w := next.Winner(); w != "" {
			setWinner.Set(w)
		}
	}

	reset := func() {
		setBoard.Set(Board{})
		setPlayer.Set("X")
		setWinner.Set("")
	}

	var status, result blaze.Node
	switch {
	case winner != "":
		result = tags.P("The winner is: " + winner)
	case board.Full():
		result = tags.P("Draw")
	default:
		status = tags.P("Player: " + player)
	}

	return tags.Div(nil,
		tags.H1("Tic Tac Toe"),
		status,
		result,
		blaze.C(BoardView, BoardProps{Board: board, Play: play, Disabled: winner != ""}),
		tags.Button(blaze.Props{"onClick": reset}, "Restart"),
	)
}

type BoardProps struct {
	Board    Board
	Play     func(i int)
	Disabled bool
}

func BoardView(c *blaze.Ctx, p BoardProps) blaze.Node {
	rows := make([]blaze.Node, 3)
	for r := range rows {
		cells := make([]blaze.Node, 3)
		for col := range cells {
			i := r*3 + col

			mark := p.Board[i]
			if mark == "" {
				mark = " "
			}

			cell := blaze.Props{"style": blaze.Style{"border": "1", "padding": "0"}, "data-square": i}
			if !p.Disabled {
				cell["onClick"] = func() { p.Play(i) }
			}
			cells[col] = tags.Div(cell, mark)
		}
		rows[r] = tags.Div(blaze.Props{"style": blaze.Style{"display": "flex"}}, cells...)
	}

	return tags.Div(nil, rows...)
}
