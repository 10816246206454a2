// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrow

// These are the fixed-width temporal kinds §4.5 names as "named T
// instantiations" of Primitive[T], rather than separate physical layouts:
// each stores the same [validity, values] buffer pair as any other scalar,
// just carrying a different decoded Type and units.
type (
	Date32    int32
	Date64    int64
	Time32    int32
	Time64    int64
	Timestamp int64
	Duration  int64

	MonthInterval int32
)

// DayTimeInterval is the day-time interval unit: a number of days plus a
// number of milliseconds within the day.
type DayTimeInterval struct {
	Days         int32
	Milliseconds int32
}

// MonthDayNanoInterval is the month-day-nano interval unit (the `tin`
// format token): months, days, and nanoseconds within the day.
type MonthDayNanoInterval struct {
	Months      int32
	Days        int32
	Nanoseconds int64
}
