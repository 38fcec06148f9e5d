// Copyright (C) 2018  MediBloc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>

package common_test

import (
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/icon-project/ICONKit/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint256Hex(t *testing.T) {
	assert.Equal(t, "0x0", common.Uint256ToHex(uint256.NewInt(0)))
	assert.Equal(t, "0x0", common.Uint256ToHex(nil))
	assert.Equal(t, "0x100", common.Uint256ToHex(uint256.NewInt(256)))
	assert.Equal(t, "0x5000", common.Uint64ToHex(0x5000))

	for _, s := range []string{"0x100", "100", "0x0100", "0X100"} {
		v, err := common.HexToUint256(s)
		require.NoError(t, err, s)
		assert.Equal(t, uint64(256), v.Uint64(), s)
	}

	for _, s := range []string{"0x0", "0", "0x000"} {
		v, err := common.HexToUint256(s)
		require.NoError(t, err, s)
		assert.True(t, v.IsZero(), s)
	}

	for _, s := range []string{"", "0x", "0xzz", "-0x1", "+ff", "-0", "0x+1", "0x-1", " 0x1", "0x_1"} {
		_, err := common.HexToUint256(s)
		assert.Equal(t, common.ErrInvalidHex, err, s)
	}

	_, err := common.HexToUint256("0x1" + "0000000000000000000000000000000000000000000000000000000000000000")
	assert.Equal(t, common.ErrOverflow, err)
}

func TestTimestampHex(t *testing.T) {
	ts, err := common.HexToTime("0x5c42da6830136")
	require.NoError(t, err)
	assert.Equal(t, int64(1623075229729078), ts.UnixNano()/int64(time.Microsecond))
	assert.Equal(t, "0x5c42da6830136", common.TimeToHex(ts))

	now := time.Now()
	parsed, err := common.HexToTime(common.MicroTimestampHex())
	require.NoError(t, err)
	assert.WithinDuration(t, now, parsed, time.Minute)
}
