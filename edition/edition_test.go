/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package edition

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		raw  string
		want Family
	}{
		{"", Family2015}, // Cargo's default when the manifest omits edition
		{"2015", Family2015},
		{"2018", Family2018Plus},
		{"2021", Family2018Plus},
		{"2024", Family2018Plus},
		{"garbage", Family2018Plus},
	}
	for _, tt := range cases {
		if got := Classify(tt.raw); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
