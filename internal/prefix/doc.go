// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package prefix strips the incidental common root directory that most
// archives carry, so two archives are compared by their contents rather than
// by the name of the folder they were packed from.
package prefix
