// Copyright (C) 2024 the tccflow authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var LoginAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tccflow_login_amount",
	Help: "The total number of successful logins",
})

var LoginFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tccflow_login_failed_amount",
	Help: "The total number of rejected logins",
})

var ProjectsCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tccflow_projects_created_amount",
	Help: "The total number of projects created by advisors",
})

var ApplicationsCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tccflow_applications_created_amount",
	Help: "The total number of project applications filed by students",
})

var ApplicationsAcceptedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tccflow_applications_accepted_amount",
	Help: "The total number of accepted project applications",
})

var RegistersAcceptedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tccflow_registers_accepted_amount",
	Help: "The total number of accepted self-registration requests",
})
