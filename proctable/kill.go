//
// Copyright 2026 The psfs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package proctable

import (
	"golang.org/x/sys/unix"
)

// SigkillTerminator delivers SIGKILL to the addressed pid.
type SigkillTerminator struct {
}

func NewSigkillTerminator() *SigkillTerminator {
	return &SigkillTerminator{}
}

func (t *SigkillTerminator) Terminate(pid int32) error {
	return unix.Kill(int(pid), unix.SIGKILL)
}
