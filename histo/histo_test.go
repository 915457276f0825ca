/*
 * histo_test.go, part of gonano.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * gonano is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package histo

import (
	"encoding/json"
	"fmt"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

var rawdata = []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}

func TestHisto(Te *testing.T) {
	dividers := []float64{0, 1, 2, 3, 4, 8}
	D := NewData(dividers, rawdata, 3)
	fmt.Println(D.String())
	expected := []float64{2, 6, 2, 7, 9}
	if !floats.Equal(D.View(), expected) {
		Te.Errorf("expected %v, got %v", expected, D.View())
	}
	if D.Total() != 26 || D.ID() != 3 {
		Te.Errorf("wrong total (%d) or ID (%d)", D.Total(), D.ID())
	}
	D.Normalize()
	if !scalar.EqualWithinAbs(floats.Sum(D.View()), 1, 1e-12) || !D.Normalized() {
		Te.Errorf("normalized histogram sums %f", floats.Sum(D.View()))
	}
	if !scalar.EqualWithinAbs(D.View()[4], 9.0/26, 1e-12) {
		Te.Errorf("wrong normalized bin %f", D.View()[4])
	}
	//a second call changes nothing
	D.Normalize()
	if !scalar.EqualWithinAbs(floats.Sum(D.View()), 1, 1e-12) {
		Te.Errorf("normalizing twice gives %v", D.View())
	}
	E := NewData(dividers, nil)
	E.Normalize()
	if E.Normalized() || E.Total() != 0 {
		Te.Error("empty histogram normalized")
	}
	div := D.CopyDividers()
	div[0] = -100
	if D.CopyDividers()[0] != 0 {
		Te.Error("CopyDividers doesn't copy")
	}
}

func TestHistoJSON(Te *testing.T) {
	D := NewData(Dividers(0, 8, 4), rawdata)
	j, err := json.Marshal(D)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("JSON:", string(j))
	D2 := new(Data)
	if err := json.Unmarshal(j, D2); err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(D.View(), D2.View()) || !floats.Equal(D.CopyDividers(), D2.CopyDividers()) {
		Te.Errorf("JSON round trip changed the histogram: %v vs %v", D, D2)
	}
	for _, bad := range []string{`{"dividers":[0,1],"histo":[1,2]}`, `{"dividers":[2,1],"histo":[1]}`, `{"histo":[]}`} {
		if err := json.Unmarshal([]byte(bad), D2); err == nil {
			Te.Errorf("inconsistent histogram %s accepted", bad)
		}
	}
}
