/*
 * QuartoGo - a Quarto playing engine in GO, written to study minimax search
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package game orchestrates a Quarto match: it tracks the current board,
// alternates the give/place roles between two players, and asks each
// player - human or AI - to decide, never itself evaluating a position.
package game

import (
	"fmt"

	"github.com/frankkopp/QuartoGo/internal/search"
)

// Player is one of the two participants. Exactly one of Engine or Human is
// set: Engine != nil makes this an AI-controlled seat, Human != nil a
// human-controlled one. Name defaults to "Player N" if left empty,
// grounded on the original's Player::get_name/set_name.
type Player struct {
	Index  int
	Name   string
	Engine *search.Engine
	Human  *Human
}

// NewAIPlayer returns a Player seat driven by engine.
func NewAIPlayer(index int, name string, engine *search.Engine) Player {
	if name == "" {
		name = fmt.Sprintf("Player %d", index+1)
	}
	return Player{Index: index, Name: name, Engine: engine}
}

// NewHumanPlayer returns a Player seat driven by the given human collaborator.
func NewHumanPlayer(index int, name string, h *Human) Player {
	if name == "" {
		name = fmt.Sprintf("Player %d", index+1)
	}
	return Player{Index: index, Name: name, Human: h}
}

// IsAI reports whether this seat is driven by the search engine.
func (p Player) IsAI() bool {
	return p.Engine != nil
}
