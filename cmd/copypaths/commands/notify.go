// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"github.com/walteh/copypaths/pkg/log"
	"github.com/walteh/copypaths/pkg/operation"
	"github.com/walteh/copypaths/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// notices are the failures a user can fix; they get a short message instead of the error chain
var notices = []struct {
	err error
	msg string
}{
	{transform.ErrNoFile, "The file has not been saved yet"},
	{transform.ErrNoProject, "The file is not part of a project. Pass --root or add a .copy-paths.yaml"},
	{transform.ErrNotInProject, "The file is outside every project folder"},
	{transform.ErrDefaultPackage, "The file is in the default Java package"},
	{operation.ErrUnsupportedLanguage, "That command is not available for this file type"},
}

// Notice returns the user-facing message for err, if it is a known condition.
func Notice(err error) (string, bool) {
	for _, n := range notices {
		if errors.Is(err, n.err) {
			return n.msg, true
		}
	}
	return "", false
}

// 🔍 Notify reports a failed command on the console
func Notify(console *log.Logger, err error) {
	if msg, ok := Notice(err); ok {
		console.Warning(msg)
		return
	}
	console.Errorf("command failed: %v", err)
}
