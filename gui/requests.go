// This file is part of Memview.
//
// Memview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memview.  If not, see <https://www.gnu.org/licenses/>.

package gui

import (
	"github.com/jetsetilly/memview/logger"
	"github.com/jetsetilly/memview/viewer"
)

// Exchange performs one frame of the viewer. Messages waiting on the
// transport are added to the input, the viewer is updated and the requests
// in the resulting frame are pushed to the transport.
//
// Requests that cannot be pushed are logged and forgotten. The viewer will
// ask again for memory that it still needs.
func Exchange(v *viewer.Viewer, t Transport, in viewer.Input) viewer.Frame {
	in.Events = append(in.Events, t.Drain()...)

	f := v.Update(in)

	for _, r := range f.Requests {
		if err := t.Push(r); err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
		}
	}

	return f
}
